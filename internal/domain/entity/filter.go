package entity

// SubscriptionFilter descreve o filtro de assinatura aplicado a cada log group.
type SubscriptionFilter struct {
	FilterName     string `json:"filter_name"`
	FilterPattern  string `json:"filter_pattern"`
	DestinationARN string `json:"destination_arn"`
	RoleARN        string `json:"role_arn"`
}
