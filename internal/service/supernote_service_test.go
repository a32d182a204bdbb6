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

func TestCreateSupernoteCombinesNotes(t *testing.T) {
	provider := &stubProvider{response: "the combined summary"}
	factory := newTestFactory(t)
	svc := NewSupernoteService(factory, newTestAiService(provider), nil, nil, nopLogger{})
	alice := seedUser(t, factory, "alice")
	ctx := context.Background()

	first := seedNote(t, factory, alice.Id, "Cells", "Biology", "cells divide", "upload")
	second := seedNote(t, factory, alice.Id, "Plants", "Botany", "plants grow", "ocr")

	doc, err := svc.Create(ctx, alice.Id, &dto.CreateSupernoteRequest{
		NoteIds: []uuid.UUID{first.Id, second.Id},
	})
	require.NoError(t, err)

	assert.Equal(t, "the combined summary", doc["Sum"])
	assert.Contains(t, doc["Header"], "Cells")
	assert.Contains(t, doc["Header"], "Plants")
	assert.Contains(t, doc["Header"], ", ")
	assert.Contains(t, doc["Provider"], "upload")
	assert.Contains(t, doc["Provider"], "ocr")

	// Source summaries are space-joined into the combine prompt.
	assert.Contains(t, provider.lastPrompt(), "cells divide")
	assert.Contains(t, provider.lastPrompt(), "plants grow")

	supernotes, err := svc.List(ctx, alice.Id)
	require.NoError(t, err)
	require.Len(t, supernotes, 1)
	assert.Equal(t, doc["_id"], supernotes[0]["_id"])
}

func TestCreateSupernoteRejectsMissingNotes(t *testing.T) {
	provider := &stubProvider{response: "sum"}
	factory := newTestFactory(t)
	svc := NewSupernoteService(factory, newTestAiService(provider), nil, nil, nopLogger{})
	alice := seedUser(t, factory, "alice")
	bob := seedUser(t, factory, "bob")
	ctx := context.Background()

	mine := seedNote(t, factory, alice.Id, "Mine", "", "text", "upload")
	theirs := seedNote(t, factory, bob.Id, "Theirs", "", "text", "upload")

	var apiErr *serverutils.ApiError

	// A note id that does not exist.
	_, err := svc.Create(ctx, alice.Id, &dto.CreateSupernoteRequest{
		NoteIds: []uuid.UUID{mine.Id, uuid.New()},
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)

	// Another user's note must be invisible, not forbidden.
	_, err = svc.Create(ctx, alice.Id, &dto.CreateSupernoteRequest{
		NoteIds: []uuid.UUID{mine.Id, theirs.Id},
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
}

func TestSupernoteListExcludesRegularNotes(t *testing.T) {
	provider := &stubProvider{response: "combined"}
	factory := newTestFactory(t)
	svc := NewSupernoteService(factory, newTestAiService(provider), nil, nil, nopLogger{})
	alice := seedUser(t, factory, "alice")
	ctx := context.Background()

	first := seedNote(t, factory, alice.Id, "A", "T", "one", "upload")
	second := seedNote(t, factory, alice.Id, "B", "T", "two", "upload")

	supernotes, err := svc.List(ctx, alice.Id)
	require.NoError(t, err)
	assert.Empty(t, supernotes)

	_, err = svc.Create(ctx, alice.Id, &dto.CreateSupernoteRequest{
		NoteIds: []uuid.UUID{first.Id, second.Id},
	})
	require.NoError(t, err)

	supernotes, err = svc.List(ctx, alice.Id)
	require.NoError(t, err)
	assert.Len(t, supernotes, 1)
}

func TestDeleteSupernote(t *testing.T) {
	provider := &stubProvider{response: "combined"}
	factory := newTestFactory(t)
	svc := NewSupernoteService(factory, newTestAiService(provider), nil, nil, nopLogger{})
	alice := seedUser(t, factory, "alice")
	bob := seedUser(t, factory, "bob")
	ctx := context.Background()

	first := seedNote(t, factory, alice.Id, "A", "T", "one", "upload")
	second := seedNote(t, factory, alice.Id, "B", "T", "two", "upload")

	doc, err := svc.Create(ctx, alice.Id, &dto.CreateSupernoteRequest{
		NoteIds: []uuid.UUID{first.Id, second.Id},
	})
	require.NoError(t, err)

	supernoteId, err := uuid.Parse(doc["_id"].(string))
	require.NoError(t, err)

	var apiErr *serverutils.ApiError

	// A regular note id is not a supernote.
	err = svc.Delete(ctx, alice.Id, first.Id)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)

	err = svc.Delete(ctx, bob.Id, supernoteId)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)

	require.NoError(t, svc.Delete(ctx, alice.Id, supernoteId))

	supernotes, err := svc.List(ctx, alice.Id)
	require.NoError(t, err)
	assert.Empty(t, supernotes)
}
