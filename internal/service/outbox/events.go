package outbox

import "encoding/json"

// Request lifecycle event types. The NATS subject is
// sehatynet.request.<type>.<request_id>.
const (
	EventRequestCreated    = "created"
	EventRequestConfirmed  = "confirmed"
	EventRequestPartial    = "partial_offer"
	EventRequestAccepted   = "partial_accepted"
	EventRequestOutOfStock = "out_of_stock"
	EventRequestReady      = "ready_for_pickup"
	EventRequestCompleted  = "completed"
	EventRequestCancelled  = "cancelled"
	EventRequestReassigned = "reassigned"
)

func encodePayload(payload map[string]any) ([]byte, error) {
	return json.Marshal(payload)
}

// DecodePayload parses a published event body back into a map; used by
// subscribers.
func DecodePayload(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
