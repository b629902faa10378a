package kafka

const (
	// Consumer Topics
	TopicBatchCompleted = "analytics.batch.completed"
)

const (
	// Consumer Group IDs
	ConsumerGroupBatchCompleted = "monitor-liverefresh-batch"
)
