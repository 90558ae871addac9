package user

import "time"

var NowFunc = time.Now // mockable

// Notification is a message record addressed to a single recipient. It is
// immutable once created; only the read flag changes, and only at the
// recipient's hand.
type Notification struct {
	ID          int       `json:"id"` // unique within the sender's outgoing sequence
	Message     string    `json:"message"`
	SenderID    int       `json:"sender_id"`
	RecipientID int       `json:"recipient_id"`
	CreatedAt   time.Time `json:"created_at"` // UTC

	read bool
}

// Send looks the recipient up in the roster and appends the notification to
// their private inbox. Delivery is at-most-once per call; a second Send
// duplicates the entry, there is no deduplication. A missing recipient is a
// soft failure: the notification stays constructed but undelivered.
func (n *Notification) Send(reg Registry) error {
	acct, err := reg.Get(n.RecipientID)
	if err != nil {
		return ErrRecipientNotFound
	}
	usr := acct.Base()
	usr.inbox = append(usr.inbox, n)
	return nil
}

// MarkAsRead flips the read flag only when viewerID is the recipient's id.
// Anyone else is a silent no-op, not a permission error.
func (n *Notification) MarkAsRead(viewerID int) {
	if viewerID == n.RecipientID {
		n.read = true
	}
}

func (n *Notification) Read() bool { return n.read }

// Notify allocates the next outgoing notification for this user and delivers
// it through the roster. The notification is recorded in the sender's
// outgoing view whether or not delivery succeeded; a missing recipient
// surfaces as ErrRecipientNotFound without aborting the caller's flow.
func (u *User) Notify(message string, recipientID int, reg Registry) (*Notification, error) {
	n := &Notification{
		ID:          len(u.sent) + 1,
		Message:     message,
		SenderID:    u.ID,
		RecipientID: recipientID,
		CreatedAt:   NowFunc().UTC(),
	}
	u.sent = append(u.sent, n)
	return n, n.Send(reg)
}

// ViewNotifications snapshots the user's inbox, restricted to unread entries
// if requested. Every returned entry is marked read as a side effect: viewing
// consumes unread status, there is no peek. Calling again restarts the view
// over the current inbox.
func (u *User) ViewNotifications(onlyUnread bool) []*Notification {
	notifs := make([]*Notification, 0, len(u.inbox))
	for _, n := range u.inbox {
		if onlyUnread && n.read {
			continue
		}
		n.MarkAsRead(u.ID)
		notifs = append(notifs, n)
	}
	return notifs
}

// DeleteNotification removes the inbox entry at position i, shifting
// subsequent entries down. Out-of-range positions are ignored.
func (u *User) DeleteNotification(i int) bool {
	if i < 0 || i >= len(u.inbox) {
		return false
	}
	u.inbox = append(u.inbox[:i], u.inbox[i+1:]...)
	return true
}

// Inbox returns a copy of the user's received notifications, in delivery order.
func (u *User) Inbox() []*Notification {
	inbox := make([]*Notification, len(u.inbox))
	copy(inbox, u.inbox)
	return inbox
}

// Sent returns a copy of the user's outgoing notification view.
func (u *User) Sent() []*Notification {
	sent := make([]*Notification, len(u.sent))
	copy(sent, u.sent)
	return sent
}
