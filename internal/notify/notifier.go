// Package notify fans out in-app notifications to affected users.
// Writes are sequential and best-effort: a failed insert is logged and
// counted, then the loop moves on to the next recipient.
package notify

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"intranet-backend/internal/models"
	"intranet-backend/internal/observability"
	"intranet-backend/internal/repositories"
)

// Notification type tags.
const (
	TypePostLike   = "post_like"
	TypeComment    = "comment"
	TypeMessage    = "message"
	TypeGroup      = "group"
	TypeEvent      = "event"
	TypeNews       = "news"
	TypeFileShare  = "file_share"
	TypeDepartment = "department"
	TypeSystem     = "system"
)

type Notifier struct {
	repo repositories.NotificationRepository
	log  *zap.Logger
}

func New(repo repositories.NotificationRepository, log *zap.Logger) *Notifier {
	return &Notifier{repo: repo, log: log}
}

// Notify writes a single notification. The actor, if present among the
// recipients of a broader fan-out, should be filtered by the caller.
func (n *Notifier) Notify(ctx context.Context, recipient bson.ObjectID, typ, content string, related models.EntityRef) {
	_, err := n.repo.Insert(ctx, models.Notification{
		Recipient: recipient,
		Type:      typ,
		Content:   content,
		RelatedTo: related,
		CreatedAt: time.Now(),
	})
	if err != nil {
		observability.IncNotificationFanoutError()
		n.log.Warn("notification insert failed",
			zap.String("type", typ),
			zap.String("recipient", recipient.Hex()),
			zap.Error(err))
		return
	}
	observability.IncNotificationFanout(typ)
}

// Fanout writes one notification per recipient, skipping the actor.
// Inserts run sequentially with no rollback on partial failure.
func (n *Notifier) Fanout(ctx context.Context, actor bson.ObjectID, recipients []bson.ObjectID, typ, content string, related models.EntityRef) {
	for _, recipient := range recipients {
		if recipient == actor {
			continue
		}
		n.Notify(ctx, recipient, typ, content, related)
	}
}
