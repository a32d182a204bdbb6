package service

import (
	"context"
	"testing"

	"supernote-be/internal/dto"
	"supernote-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicLifecycle(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewTopicService(factory)
	alice := seedUser(t, factory, "alice")
	ctx := context.Background()

	created, err := svc.Create(ctx, alice.Id, &dto.CreateTopicRequest{Name: "Physics"})
	require.NoError(t, err)
	assert.Equal(t, "Physics", created.Name)
	assert.Nil(t, created.TeamId)

	topics, err := svc.List(ctx, alice.Id, nil)
	require.NoError(t, err)
	require.Len(t, topics, 1)

	updated, err := svc.Update(ctx, alice.Id, &dto.UpdateTopicRequest{Id: created.Id, Name: "Modern Physics"})
	require.NoError(t, err)
	assert.Equal(t, "Modern Physics", updated.Name)

	require.NoError(t, svc.Delete(ctx, alice.Id, created.Id))

	topics, err = svc.List(ctx, alice.Id, nil)
	require.NoError(t, err)
	assert.Empty(t, topics)
}

func TestTopicOwnership(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewTopicService(factory)
	alice := seedUser(t, factory, "alice")
	bob := seedUser(t, factory, "bob")
	ctx := context.Background()

	created, err := svc.Create(ctx, alice.Id, &dto.CreateTopicRequest{Name: "Private"})
	require.NoError(t, err)

	var apiErr *serverutils.ApiError

	_, err = svc.Update(ctx, bob.Id, &dto.UpdateTopicRequest{Id: created.Id, Name: "Stolen"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)

	err = svc.Delete(ctx, bob.Id, created.Id)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)

	_, err = svc.Update(ctx, alice.Id, &dto.UpdateTopicRequest{Id: uuid.New(), Name: "Missing"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
}

func TestTopicTeamMembershipGate(t *testing.T) {
	factory := newTestFactory(t)
	topicSvc := NewTopicService(factory)
	teamSvc := NewTeamService(factory)
	alice := seedUser(t, factory, "alice")
	carol := seedUser(t, factory, "carol")
	ctx := context.Background()

	team, err := teamSvc.Create(ctx, alice.Id, &dto.CreateTeamRequest{Name: "Study Group"})
	require.NoError(t, err)

	// The owner can attach topics to the team.
	_, err = topicSvc.Create(ctx, alice.Id, &dto.CreateTopicRequest{Name: "Shared", TeamId: &team.Id})
	require.NoError(t, err)

	var apiErr *serverutils.ApiError

	// Outsiders cannot.
	_, err = topicSvc.Create(ctx, carol.Id, &dto.CreateTopicRequest{Name: "Sneaky", TeamId: &team.Id})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)

	missingTeam := uuid.New()
	_, err = topicSvc.Create(ctx, alice.Id, &dto.CreateTopicRequest{Name: "Orphan", TeamId: &missingTeam})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)

	// Listing by team is gated the same way.
	topics, err := topicSvc.List(ctx, alice.Id, &team.Id)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "Shared", topics[0].Name)

	_, err = topicSvc.List(ctx, carol.Id, &team.Id)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)
}
