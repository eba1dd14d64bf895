package main

type config struct {
	BaseURL   string `mapstructure:"base_url"`
	Path      string `mapstructure:"path"`
	Secret    string `mapstructure:"secret"`
	Event     string `mapstructure:"event"`
	OrderID   string `mapstructure:"order_id"`
	PaymentID string `mapstructure:"payment_id"`
	Amount    string `mapstructure:"amount"`
	Currency  string `mapstructure:"currency"`
	Count     int    `mapstructure:"count"`
	Interval  string `mapstructure:"interval"`
}
