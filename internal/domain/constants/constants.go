// Package constants holds values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Echo context keys set by the auth middleware.
const (
	ContextKeyPrincipal = "principal"
)

// Wire event names.
const (
	EventRegister            = "register"
	EventRegistered          = "registered"
	EventSendDirect          = "send-direct"
	EventSendBranchBroadcast = "send-branch-broadcast"
	EventSendShopBroadcast   = "send-shop-broadcast"
	EventOrderStatusChange   = "order-status-change"
	EventInventoryAlert      = "inventory-alert"
	EventEmergencyAlert      = "emergency-alert"
	EventPing                = "ping"
	EventPong                = "pong"

	EventNotification          = "notification"
	EventBranchMessage         = "branch-message"
	EventShopMessage           = "shop-message"
	EventMessageStatus         = "message-status"
	EventSessionReplaced       = "session-replaced"
	EventOrderNotification     = "order-notification"
	EventInventoryNotification = "inventory-notification"
	EventEmergencyNotification = "emergency-notification"
	EventError                 = "error"
)

// NotificationTypePrivateMessage tags live direct deliveries.
const NotificationTypePrivateMessage = "private-message"
