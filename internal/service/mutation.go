package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aditya26raj01/status-app-backend/internal/changefeed"
	"github.com/aditya26raj01/status-app-backend/internal/domain"
	"github.com/aditya26raj01/status-app-backend/internal/realtime"
	"github.com/aditya26raj01/status-app-backend/internal/repository"
	"github.com/aditya26raj01/status-app-backend/pkg/logger"
	"github.com/aditya26raj01/status-app-backend/pkg/telemetry"
)

var (
	// ErrCrossOrgAccess is returned when the caller's active organization does
	// not match the entity's organization
	ErrCrossOrgAccess = errors.New("entity belongs to a different organization")
	// ErrInvariantViolation is returned when a committed write left the entity
	// in a state the audit trail cannot describe (e.g. no ID assigned)
	ErrInvariantViolation = errors.New("post-write invariant violation")
	// ErrEmptyUpdate is returned when an update request names an entity but
	// carries no fields to change
	ErrEmptyUpdate = errors.New("at least one field must be provided for update")
)

// Broadcaster is the hub surface the recorder needs
type Broadcaster interface {
	Broadcast(ctx context.Context, env realtime.Envelope)
}

// Recorder runs the shared tail of every mutation: audit write (mandatory),
// changefeed mirror (best effort), live broadcast (best effort). The audit
// write failing fails the whole mutation; nothing after it can.
type Recorder struct {
	changeRepo repository.ChangeLogRepository
	feed       *changefeed.Publisher
	hub        Broadcaster

	mutationCount *telemetry.Counter
}

// NewRecorder creates a Recorder. feed may be nil when Kafka is disabled.
func NewRecorder(changeRepo repository.ChangeLogRepository, feed *changefeed.Publisher, hub Broadcaster) *Recorder {
	r := &Recorder{changeRepo: changeRepo, feed: feed, hub: hub}
	r.mutationCount, _ = telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "mutations_total",
		Description: "Number of recorded entity mutations",
		Unit:        "1",
	})
	return r
}

// Record appends the audit record for one committed mutation, then mirrors
// and broadcasts it. entity is the post-write state sent to live clients;
// changes holds field→new-value pairs (empty for deletes).
func (r *Recorder) Record(
	ctx context.Context,
	actor *domain.User,
	entityID string,
	entityType domain.EntityType,
	kind domain.ChangeKind,
	changes map[string]string,
	orgID string,
	entity interface{},
	action realtime.Action,
) error {
	ctx, span := telemetry.StartSpan(ctx, "mutation.record")
	defer span.End()
	span.SetAttributes(
		telemetry.EntityTypeAttr(string(entityType)),
		telemetry.ChangeKindAttr(string(kind)),
		telemetry.OrgIDAttr(orgID),
	)

	// The write must have assigned an identity before it can be audited.
	if entityID == "" {
		logger.Error("mutation committed without an entity ID",
			zap.String("entity_type", string(entityType)),
			zap.String("change_kind", string(kind)),
			zap.String("org_id", orgID),
		)
		telemetry.SetSpanError(ctx, ErrInvariantViolation)
		return ErrInvariantViolation
	}
	if changes == nil {
		changes = map[string]string{}
	}

	entry := &domain.ChangeLog{
		ID:         uuid.New().String(),
		EntityID:   entityID,
		EntityType: entityType,
		ChangeKind: kind,
		Changes:    changes,
		OrgID:      orgID,
		ActorID:    actor.ID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := r.changeRepo.Create(ctx, entry); err != nil {
		telemetry.SetSpanError(ctx, err)
		return err
	}
	if r.mutationCount != nil {
		r.mutationCount.Inc(ctx,
			telemetry.EntityTypeAttr(string(entityType)),
			telemetry.ChangeKindAttr(string(kind)),
		)
	}

	r.feed.Publish(ctx, entry)
	telemetry.AddSpanEvent(ctx, "changefeed.published")

	if env, ok := realtime.NewEnvelope(string(entityType), entity, action); ok {
		r.hub.Broadcast(ctx, env)
		telemetry.AddSpanEvent(ctx, "hub.broadcast")
	}
	return nil
}

// authorize asserts the actor holds one of the roles in their active
// membership and that the active organization matches orgID
func authorize(actor *domain.User, orgID string, roles ...domain.Role) error {
	if err := domain.RequireRole(actor, roles...); err != nil {
		return err
	}
	if actor.CurrentOrgID != orgID {
		return ErrCrossOrgAccess
	}
	return nil
}
