package kafka

const (
	// Consumer Topics
	TopicBatchCompleted = "analytics.batch.completed"

	// Producer Topics
	TopicIngestResults = "monitor.ingest.results"
)

const (
	// Consumer Group IDs
	ConsumerGroupBatchIngest = "monitor-ingest-batch"
)
