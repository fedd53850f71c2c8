package models

import "time"

// User is the authenticated account as the backend reports it.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// SocialLinks holds the external profile links a designer can publish.
type SocialLinks struct {
	Website   string `json:"website,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Behance   string `json:"behance,omitempty"`
}

type Profile struct {
	Bio         string      `json:"bio,omitempty"`
	Location    string      `json:"location,omitempty"`
	Website     string      `json:"website,omitempty"`
	AvatarURL   string      `json:"avatarUrl,omitempty"`
	Skills      []string    `json:"skills,omitempty"`
	SocialLinks SocialLinks `json:"socialLinks"`
}

// Settings is the shape of GET /profile/settings.
type Settings struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Role    string  `json:"role,omitempty"`
	Profile Profile `json:"profile"`
}

type DesignType string

const (
	DesignCatalog DesignType = "CATALOG"
	DesignCustom  DesignType = "CUSTOM"
)

// Design prices are minor currency units (paise) throughout.
type Design struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"imageUrl"`
	Price       int64      `json:"price"`
	Type        DesignType `json:"type"`
	Material    string     `json:"material,omitempty"`
	SizeGuide   string     `json:"sizeGuide,omitempty"`
	DesignerID  string     `json:"designerId,omitempty"`
	Designer    *User      `json:"designer,omitempty"`
}

// Designer is a user with role DESIGNER plus their public profile and work.
type Designer struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email,omitempty"`
	Profile *Profile `json:"profile,omitempty"`
	Designs []Design `json:"designs,omitempty"`
}

type OrderStatus string

const (
	OrderPending      OrderStatus = "PENDING"
	OrderAwaitingReqs OrderStatus = "AWAITING_REQUIREMENTS"
	OrderInProgress   OrderStatus = "IN_PROGRESS"
	OrderShipped      OrderStatus = "SHIPPED"
	OrderCompleted    OrderStatus = "COMPLETED"
)

// DesignSnapshot is the design as it looked at purchase time; it is never
// re-joined to the live design.
type DesignSnapshot struct {
	Title string `json:"title"`
	Image string `json:"image"`
	Price int64  `json:"price"`
}

// Measurements is the flat key/value form the customer submits.
type Measurements map[string]string

type Order struct {
	ID                   string          `json:"id"`
	Status               OrderStatus     `json:"status"`
	TotalAmount          int64           `json:"totalAmount"`
	CreatedAt            time.Time       `json:"createdAt"`
	DesignSnapshot       *DesignSnapshot `json:"designSnapshot,omitempty"`
	CustomerMeasurements Measurements    `json:"customerMeasurements,omitempty"`
	TrackingNumber       string          `json:"trackingNumber,omitempty"`
	ShippingCarrier      string          `json:"shippingCarrier,omitempty"`
	Customer             *User           `json:"customer,omitempty"`
}

type OfferStatus string

const (
	OfferPending  OfferStatus = "PENDING"
	OfferAccepted OfferStatus = "ACCEPTED"
	OfferRejected OfferStatus = "REJECTED"
)

// Message is a chat entry; an offer is a message with IsOffer set and the
// offer fields populated (price in paise).
type Message struct {
	ID          string      `json:"id"`
	Text        string      `json:"text,omitempty"`
	SenderID    string      `json:"senderId"`
	CreatedAt   time.Time   `json:"createdAt"`
	IsOffer     bool        `json:"isOffer"`
	OfferPrice  int64       `json:"offerPrice,omitempty"`
	OfferTitle  string      `json:"offerTitle,omitempty"`
	OfferStatus OfferStatus `json:"offerStatus,omitempty"`
}

// ChatUser is the slim participant shape embedded in conversations.
type ChatUser struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Profile *Profile `json:"profile,omitempty"`
}

// MessagePreview is the last-message summary the inbox list shows.
type MessagePreview struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type Conversation struct {
	ID        string           `json:"id"`
	UpdatedAt time.Time        `json:"updatedAt"`
	User1     ChatUser         `json:"user1"`
	User2     ChatUser         `json:"user2"`
	Messages  []MessagePreview `json:"messages,omitempty"`
}

// Other returns the participant that is not selfID. Resolution is by id
// comparison, never by which side of the pair the server happened to send
// first.
func (c Conversation) Other(selfID string) ChatUser {
	if c.User1.ID == selfID {
		return c.User2
	}
	return c.User1
}

type PaymentType string

const (
	PayCatalog   PaymentType = "CATALOG"
	PayChatOffer PaymentType = "CHAT_OFFER"
)

/// GatewayOrder is the backend's answer to /payments/create-order: the
// Razorpay order plus our own order id.
type GatewayOrder struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	DBOrderID string `json:"dbOrderId"`
}

// PaymentVerification is forwarded to the backend exactly as the checkout
// overlay produced it; nothing is recomputed client-side.
type PaymentVerification struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	DBOrderID         string `json:"dbOrderId"`
}
