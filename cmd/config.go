package cmd

// Config carries every externally supplied setting. Values come from the
// environment (see cmd/app/main.go); durations and broker lists are parsed at
// startup so a bad value fails the process, not a request.
type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	KafkaHost             string
	KafkaDeliveryTopic    string
	IdentityServiceURL    string
	StaleReminderSchedule string
	StalePendingThreshold string
}
