package db

import (
	"context"
	"log/slog"

	"github.com/spacesedan/farsignal/internal/models"
	"github.com/spacesedan/farsignal/internal/utils"
)

// Archiver buffers responded transmissions and writes them to DynamoDB in
// batches, so a response never blocks on storage.
type Archiver struct {
	buffer *utils.BatchBuffer[models.TransmissionRecord]
}

func NewArchiver() *Archiver {
	return &Archiver{
		buffer: utils.NewBatchBuffer[models.TransmissionRecord](),
	}
}

// Add buffers a record, flushing when the batch threshold is reached.
func (a *Archiver) Add(ctx context.Context, record models.TransmissionRecord) {
	a.buffer.Add(record)
	if a.buffer.Size() >= utils.BATCH_SIZE {
		a.Flush(ctx)
	}
}

// Flush writes whatever is buffered. Failures are logged, not returned; the
// archive is best-effort and must never stall the session.
func (a *Archiver) Flush(ctx context.Context) {
	if !a.buffer.HasData() {
		return
	}

	a.buffer.LogBatchProcessing("transmission_records")
	batch := a.buffer.GetAndClear()
	if err := BatchInsertTransmissionRecords(ctx, batch); err != nil {
		slog.Error("[Archiver] Failed to archive transmission batch",
			slog.Int("batch_size", len(batch)),
			slog.String("error", err.Error()))
	}
}

// HasData reports whether anything is still buffered.
func (a *Archiver) HasData() bool {
	return a.buffer.HasData()
}
