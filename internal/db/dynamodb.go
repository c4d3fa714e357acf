package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/spacesedan/farsignal/internal/clients"
	"github.com/spacesedan/farsignal/internal/models"
)

const (
	HARVESTED_TITLES_TABLE_NAME = "HarvestedTitles"
	TRANSMISSIONS_TABLE_NAME    = "TransmissionResponses"
)

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// StoreHarvestedTitles writes a harvest batch, 25 items per request per the
// BatchWriteItem limit, retrying unprocessed items with backoff.
func StoreHarvestedTitles(ctx context.Context, titles []models.HarvestedTitle) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	// Harvested titles age out after a week.
	expirationTime := time.Now().Add(7 * 24 * time.Hour).Unix()

	const maxBatchSize = 25
	for i := 0; i < len(titles); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:

			end := i + maxBatchSize
			if end > len(titles) {
				end = len(titles)
			}

			writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
			for _, title := range titles[i:end] {
				writeRequests = append(writeRequests, types.WriteRequest{
					PutRequest: &types.PutRequest{
						Item: map[string]types.AttributeValue{
							"id":         &types.AttributeValueMemberS{Value: title.ID},
							"title":      &types.AttributeValueMemberS{Value: title.Title},
							"source":     &types.AttributeValueMemberS{Value: title.Source},
							"fetched_at": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", title.FetchedAt.Unix())},
							"expires_at": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expirationTime)},
						},
					},
				})
			}

			out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					HARVESTED_TITLES_TABLE_NAME: writeRequests,
				},
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to batch write harvested titles: %w", err)
			}

			if err := retryUnprocessed(ctx, out, HARVESTED_TITLES_TABLE_NAME); err != nil {
				return err
			}
		}
	}
	slog.Info("[DynamoDB] Successfully stored harvested titles", slog.Int("count", len(titles)))
	return nil
}

type harvestedTitleItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Source    string `dynamodbav:"source"`
	FetchedAt int64  `dynamodbav:"fetched_at"`
}

// GetAllHarvestedTitles scans the harvest table.
func GetAllHarvestedTitles(ctx context.Context) ([]models.HarvestedTitle, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	var titles []models.HarvestedTitle
	input := &dynamodb.ScanInput{
		TableName: aws.String(HARVESTED_TITLES_TABLE_NAME),
	}

	paginator := dynamodb.NewScanPaginator(dbClient, input)

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for harvested titles failed: %w", err)
		}
		var page []harvestedTitleItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal harvested title page",
				slog.String("error", err.Error()))
			return nil, err
		}
		for _, item := range page {
			titles = append(titles, models.HarvestedTitle{
				ID:        item.ID,
				Title:     item.Title,
				Source:    item.Source,
				FetchedAt: time.Unix(item.FetchedAt, 0).UTC(),
			})
		}
	}
	slog.Info("[DynamoDB] Successfully retrieved harvested titles", slog.Int("count", len(titles)))
	return titles, nil
}

// BatchInsertTransmissionRecords archives a batch of responded transmissions.
func BatchInsertTransmissionRecords(ctx context.Context, records []models.TransmissionRecord) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}
	if len(records) == 0 {
		return nil
	}

	writeRequests := make([]types.WriteRequest, 0, len(records))
	for _, record := range records {
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{
				Item: RecordToDynamoDBItem(record),
			},
		})
	}

	out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{
			TRANSMISSIONS_TABLE_NAME: writeRequests,
		},
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to batch write transmission records: %w", err)
	}

	if err := retryUnprocessed(ctx, out, TRANSMISSIONS_TABLE_NAME); err != nil {
		return err
	}

	slog.Info("[DynamoDB] Successfully stored transmission records",
		slog.Int("count", len(records)))
	return nil
}

func retryUnprocessed(ctx context.Context, out *dynamodb.BatchWriteItemOutput, table string) error {
	retryCount := 0
	backoff := 500 * time.Millisecond
	var err error
	for len(out.UnprocessedItems) > 0 && retryCount < 3 {
		time.Sleep(backoff)
		backoff *= 2

		slog.Warn("[DynamoDB] Retrying unprocessed items...",
			slog.Int("attempt", retryCount+1),
			slog.Int("remaining", len(out.UnprocessedItems[table])))

		out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: out.UnprocessedItems,
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] Retry error %w", err)
		}
		retryCount++
	}

	if len(out.UnprocessedItems) > 0 {
		slog.Error("[DynamoDB] Some items were not written even after retries",
			slog.Int("remaining", len(out.UnprocessedItems[table])))
	}
	return nil
}

// RecordToDynamoDBItem maps a record into attribute values. The key is a hash
// of the phrase and response time, so replayed batches overwrite rather than
// duplicate.
func RecordToDynamoDBItem(record models.TransmissionRecord) map[string]types.AttributeValue {
	item := make(map[string]types.AttributeValue)

	item["record_id"] = &types.AttributeValueMemberS{Value: recordID(record)}
	item["title"] = &types.AttributeValueMemberS{Value: record.Title}
	item["phrase"] = &types.AttributeValueMemberS{Value: record.Phrase}
	item["choice"] = &types.AttributeValueMemberS{Value: record.Choice}
	item["distance"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", record.Distance)}
	item["score"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", record.Score)}
	item["magnitude"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", record.Magnitude)}
	item["emotion"] = &types.AttributeValueMemberS{Value: record.Emotion}
	item["confidence"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", record.Confidence)}
	item["responded_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", record.RespondedAt.Unix())}
	item["ttl"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", time.Now().Add(30*24*time.Hour).Unix())}

	return item
}

func recordID(record models.TransmissionRecord) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%d", record.Phrase, record.RespondedAt.UnixNano())))
	return hex.EncodeToString(h[:16])
}
