package websocket

import (
	"sort"
	"strings"
)

// RoomID names the conversation room of two users about one car.
// The id does not depend on who is sender and who is receiver.
func RoomID(userA, userB, carID string) string {
	ids := []string{userA, userB, carID}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}
