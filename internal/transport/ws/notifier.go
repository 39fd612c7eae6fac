package ws

import (
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dstanic/tasknest/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
// Payloads reuse the domain JSON shapes, so password hashes stay out of
// the feed the same way they stay out of HTTP responses.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) UserCreated(user *domain.User) {
	n.send(EventTypeUserCreated, UserPayload{User: *user})
}

func (n *HubNotifier) UserUpdated(user *domain.User) {
	n.send(EventTypeUserUpdated, UserPayload{User: *user})
}

func (n *HubNotifier) UserDeleted(id primitive.ObjectID) {
	n.send(EventTypeUserDeleted, DeletedPayload{ID: id})
}

func (n *HubNotifier) TaskCreated(task *domain.Task) {
	n.send(EventTypeTaskCreated, TaskPayload{Task: *task})
}

func (n *HubNotifier) TaskUpdated(task *domain.Task) {
	n.send(EventTypeTaskUpdated, TaskPayload{Task: *task})
}

func (n *HubNotifier) TaskDeleted(id primitive.ObjectID) {
	n.send(EventTypeTaskDeleted, DeletedPayload{ID: id})
}

func (n *HubNotifier) send(eventType string, payload any) {
	evt, err := NewEvent(eventType, payload)
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Broadcast(evt)
}
