// Package notify delivers order status notifications to the owner of the
// order. Transports publish a JSON message that a mailer service turns into
// an email; AsyncDispatcher keeps delivery off the request path.
package notify

import (
	"encoding/json"

	"market/internal/core/ports"
)

// Subject is the email subject of every status notification.
const Subject = "New Order Status Update"

type message struct {
	Subject string `json:"subject"`
	ports.StatusNotification
}

func encode(n ports.StatusNotification) ([]byte, error) {
	return json.Marshal(message{Subject: Subject, StatusNotification: n})
}
