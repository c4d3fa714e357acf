package kafka_client

const (
	KAFKA_TOPIC_SESSION_EVENTS   = "transmission-events" // presentation events emitted by a running session
	KAFKA_TOPIC_HARVESTED_TITLES = "harvested-titles"    // fresh titles published by the harvester

	PRODUCE_RETRIES = 3
)
