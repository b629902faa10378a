package rabbitmq

const (
	// ExchangeNotificationEvents is the topic exchange notification
	// consumers bind against.
	ExchangeNotificationEvents = "notification.events"

	// RoutingKeyAlertCrisis routes crisis-level alert events.
	RoutingKeyAlertCrisis = "alert.crisis"
)
