package service

import (
	"context"
	"testing"
	"time"

	"supernote-be/internal/dto"
	"supernote-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeAndSaveThenFindByHeader(t *testing.T) {
	provider := &stubProvider{response: "a short summary"}
	factory := newTestFactory(t)
	svc := NewNoteService(factory, newTestAiService(provider), nil, nil, nil, nopLogger{})
	user := seedUser(t, factory, "alice")
	ctx := context.Background()

	created, err := svc.SummarizeAndSave(ctx, user.Id, &dto.SummarizeAndSaveRequest{
		Header:   "Thermodynamics",
		Topic:    "Physics",
		Text:     "long lecture transcript",
		Provider: "upload",
	})
	require.NoError(t, err)
	assert.Equal(t, "a short summary", created.Sum)
	assert.Contains(t, provider.lastPrompt(), "long lecture transcript")

	doc, err := svc.FindByHeader(ctx, user.Id, "Thermodynamics")
	require.NoError(t, err)

	// Legacy document shape: stringified id and dd/mm/yyyy timestamps.
	assert.Equal(t, created.Id.String(), doc["_id"])
	assert.Equal(t, "a short summary", doc["Sum"])
	assert.Equal(t, "Physics", doc["Topic"])

	_, err = time.Parse("02/01/2006 15:04:05", doc["DateTime"].(string))
	assert.NoError(t, err)

}

func TestTopicsListsDistinctTopics(t *testing.T) {
	provider := &stubProvider{response: "sum"}
	factory := newTestFactory(t)
	svc := NewNoteService(factory, newTestAiService(provider), nil, nil, nil, nopLogger{})
	alice := seedUser(t, factory, "alice")
	bob := seedUser(t, factory, "bob")
	ctx := context.Background()

	seedNote(t, factory, alice.Id, "Header One", "Physics", "a", "upload")
	seedNote(t, factory, alice.Id, "Header Two", "Physics", "b", "upload")
	seedNote(t, factory, alice.Id, "Header Three", "Biology", "c", "upload")
	seedNote(t, factory, bob.Id, "Header Four", "Chemistry", "d", "upload")

	topics, err := svc.Topics(ctx, alice.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Biology", "Physics"}, topics)
}

func TestFindByTopicReturnsOwnNotesOnly(t *testing.T) {
	provider := &stubProvider{response: "sum"}
	factory := newTestFactory(t)
	svc := NewNoteService(factory, newTestAiService(provider), nil, nil, nil, nopLogger{})
	alice := seedUser(t, factory, "alice")
	bob := seedUser(t, factory, "bob")
	ctx := context.Background()

	seedNote(t, factory, alice.Id, "Note A", "Biology", "cells", "upload")
	seedNote(t, factory, alice.Id, "Note B", "Biology", "plants", "upload")
	seedNote(t, factory, bob.Id, "Note C", "Biology", "animals", "upload")

	docs, err := svc.FindByTopic(ctx, alice.Id, "Biology")
	require.NoError(t, err)
	assert.Len(t, docs, 2)
	for _, doc := range docs {
		assert.NotEqual(t, "Note C", doc["Header"])
	}
}

func TestNoteShowOwnership(t *testing.T) {
	provider := &stubProvider{response: "sum"}
	factory := newTestFactory(t)
	svc := NewNoteService(factory, newTestAiService(provider), nil, nil, nil, nopLogger{})
	alice := seedUser(t, factory, "alice")
	bob := seedUser(t, factory, "bob")
	ctx := context.Background()

	note := seedNote(t, factory, alice.Id, "Mine", "", "text", "upload")

	var apiErr *serverutils.ApiError

	_, err := svc.Show(ctx, bob.Id, note.Id)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)

	_, err = svc.Show(ctx, alice.Id, uuid.New())
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)

	got, err := svc.Show(ctx, alice.Id, note.Id)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Header)
}

func TestNoteUpdateAndToggleFavorite(t *testing.T) {
	provider := &stubProvider{response: "sum"}
	factory := newTestFactory(t)
	svc := NewNoteService(factory, newTestAiService(provider), nil, nil, nil, nopLogger{})
	alice := seedUser(t, factory, "alice")
	ctx := context.Background()

	note := seedNote(t, factory, alice.Id, "Old header", "Old topic", "old sum", "upload")

	updated, err := svc.Update(ctx, alice.Id, &dto.UpdateNoteRequest{
		Id:     note.Id,
		Header: "New header",
	})
	require.NoError(t, err)
	assert.Equal(t, "New header", updated.Header)
	// Unset fields keep their previous values.
	assert.Equal(t, "Old topic", updated.Topic)
	assert.Equal(t, "old sum", updated.Sum)

	fav, err := svc.ToggleFavorite(ctx, alice.Id, note.Id)
	require.NoError(t, err)
	assert.True(t, fav.Favorite)

	unfav, err := svc.ToggleFavorite(ctx, alice.Id, note.Id)
	require.NoError(t, err)
	assert.False(t, unfav.Favorite)
}

func TestFavoritesListing(t *testing.T) {
	provider := &stubProvider{response: "sum"}
	factory := newTestFactory(t)
	svc := NewNoteService(factory, newTestAiService(provider), nil, nil, nil, nopLogger{})
	alice := seedUser(t, factory, "alice")
	bob := seedUser(t, factory, "bob")
	ctx := context.Background()

	starred := seedNote(t, factory, alice.Id, "Starred", "", "text", "upload")
	seedNote(t, factory, alice.Id, "Plain", "", "text", "upload")
	other := seedNote(t, factory, bob.Id, "Someone else's", "", "text", "upload")

	_, err := svc.ToggleFavorite(ctx, alice.Id, starred.Id)
	require.NoError(t, err)
	_, err = svc.ToggleFavorite(ctx, bob.Id, other.Id)
	require.NoError(t, err)

	favorites, err := svc.Favorites(ctx, alice.Id)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Starred", favorites[0].Header)
	assert.True(t, favorites[0].Favorite)
}

func TestNoteDelete(t *testing.T) {
	provider := &stubProvider{response: "sum"}
	factory := newTestFactory(t)
	svc := NewNoteService(factory, newTestAiService(provider), nil, nil, nil, nopLogger{})
	alice := seedUser(t, factory, "alice")
	ctx := context.Background()

	note := seedNote(t, factory, alice.Id, "Doomed", "", "text", "upload")

	require.NoError(t, svc.Delete(ctx, alice.Id, note.Id))

	var apiErr *serverutils.ApiError
	_, err := svc.Show(ctx, alice.Id, note.Id)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
}

const factCheckJSON = `{
  "overall_status": "VERIFIED",
  "confidence": 92,
  "claims": [
    {
      "claim": "Water boils at 100C at sea level",
      "status": "VERIFIED",
      "explanation": "Standard atmospheric pressure",
      "sources": ["physics textbook"]
    }
  ],
  "summary": "Content is accurate"
}`

func TestFactCheckNoteStoresResult(t *testing.T) {
	provider := &stubProvider{response: factCheckJSON}
	factory := newTestFactory(t)
	svc := NewNoteService(factory, newTestAiService(provider), nil, nil, nil, nopLogger{})
	alice := seedUser(t, factory, "alice")
	ctx := context.Background()

	note := seedNote(t, factory, alice.Id, "Boiling", "", "Water boils at 100C", "upload")

	result, err := svc.FactCheckNote(ctx, alice.Id, note.Id)
	require.NoError(t, err)
	// The record normalizes the model's all-caps status to lowercase.
	assert.Equal(t, "verified", result.Status)
	assert.InDelta(t, 0.92, result.Confidence, 0.001)
	assert.Equal(t, "structured", result.Source)
	require.Len(t, result.Claims, 1)
	assert.Equal(t, "Water boils at 100C at sea level", result.Claims[0].Claim)

	checks, err := svc.ListFactChecks(ctx, alice.Id, note.Id)
	require.NoError(t, err)
	require.Len(t, checks, 1)
	assert.Equal(t, "verified", checks[0].Status)
	assert.Equal(t, "Content is accurate", checks[0].Summary)
}
