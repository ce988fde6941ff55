package push

// Notification is a provider-independent push intent for a set of device tokens.
type Notification struct {
	Tokens []string               `json:"tokens" bson:"tokens"`
	Title  string                 `json:"title" bson:"title"`
	Body   string                 `json:"body" bson:"body"`
	Data   map[string]interface{} `json:"data,omitempty" bson:"data,omitempty"`
}

// Message is one Expo push message as sent on the wire.
type Message struct {
	To        string                 `json:"to"`
	Title     string                 `json:"title,omitempty"`
	Body      string                 `json:"body,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Sound     string                 `json:"sound,omitempty"`
	Priority  string                 `json:"priority,omitempty"`
	ChannelID string                 `json:"channelId,omitempty"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"

	// ErrorDeviceNotRegistered is the receipt/ticket error for a token that can no longer receive pushes.
	ErrorDeviceNotRegistered = "DeviceNotRegistered"
)

// Ticket acknowledges that the provider accepted (or rejected) one message.
type Ticket struct {
	ID      string                 `json:"id,omitempty"`
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
	Token   string                 `json:"token,omitempty"`
}

// Receipt reports the final delivery outcome of an accepted ticket.
type Receipt struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// DetailError returns details.error, the provider's machine-readable error code.
func DetailError(details map[string]interface{}) string {
	if details == nil {
		return ""
	}
	code, _ := details["error"].(string)
	return code
}
