package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blueprint-ai/backend/internal/engine"
	apperrors "blueprint-ai/backend/internal/errors"
	"blueprint-ai/backend/internal/llm"
	mock_llm "blueprint-ai/backend/internal/llm/mocks"
	"blueprint-ai/backend/internal/model"
	mock_repo "blueprint-ai/backend/internal/repository/mocks"
	"blueprint-ai/backend/internal/service"
)

const testImage = "data:image/png;base64,AAAA"

var testDefaults = model.TechStack{
	Framework:        "Vue",
	ComponentLibrary: "ElementPlus",
	AppType:          "web",
	Temperature:      0.5,
}

type sessionMocks struct {
	provider *mock_llm.MockProvider
	repo     *mock_repo.MockRepository
}

func setupSessionService(t *testing.T) (*service.SessionService, sessionMocks) {
	mocks := sessionMocks{
		provider: mock_llm.NewMockProvider(t),
		repo:     mock_repo.NewMockRepository(t),
	}
	mocks.repo.On("SaveSession", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	mocks.repo.On("DeleteSession", mock.Anything, mock.Anything).Return(nil).Maybe()

	composer := engine.NewComposer(mocks.provider, "initial-model", 20000)
	refiner := engine.NewRefiner(mocks.provider, "refine-model", 4000)
	validator := engine.NewValidator(mocks.provider, "validation-model", 1000)

	svc := service.NewSessionService(mocks.repo, composer, refiner, validator, testDefaults)
	return svc, mocks
}

// streamReply makes the mock provider emit the given fragments followed by
// the terminal chunk.
func streamReply(provider *mock_llm.MockProvider, finishReason string, fragments ...string) *mock.Call {
	return provider.On("CompleteStream", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ch := args.Get(2).(chan<- llm.StreamChunk)
			for _, fragment := range fragments {
				ch <- llm.StreamChunk{Content: fragment}
			}
			ch <- llm.StreamChunk{Done: true, FinishReason: finishReason}
			close(ch)
		}).
		Return(nil)
}

// drain consumes a chunk stream to completion, returning the accumulated
// content and the terminal chunk.
func drain(stream <-chan model.StreamChunk) (string, model.StreamChunk) {
	var content string
	var final model.StreamChunk
	for chunk := range stream {
		if chunk.Done {
			final = chunk
			continue
		}
		content += chunk.Content
	}
	return content, final
}

func TestSessionService_StartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - empty stack fields fall back to defaults", func(t *testing.T) {
		svc, _ := setupSessionService(t)

		session, err := svc.StartSession(ctx, testImage, model.TechStack{Framework: "React"})
		require.NoError(t, err)

		assert.NotEmpty(t, session.ID)
		assert.Equal(t, testImage, session.Image)
		assert.Equal(t, "React", session.Stack.Framework)
		assert.Equal(t, "ElementPlus", session.Stack.ComponentLibrary)
		assert.Equal(t, "web", session.Stack.AppType)
		assert.InDelta(t, 0.5, session.Stack.Temperature, 0.0001)
		assert.Empty(t, session.Versions)
		assert.Empty(t, session.Turns)
	})

	t.Run("Success - starting again clears prior state", func(t *testing.T) {
		svc, _ := setupSessionService(t)

		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)
		_, err = svc.UpdateDocument(ctx, "edited content")
		require.NoError(t, err)

		session, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)
		assert.Empty(t, session.ActiveDocument)
		assert.Empty(t, session.Versions)
	})

	t.Run("Failure - missing image", func(t *testing.T) {
		svc, _ := setupSessionService(t)

		_, err := svc.StartSession(ctx, "", model.TechStack{})
		assert.ErrorIs(t, err, apperrors.ErrMissingInput)
	})
}

func TestSessionService_GenerateInitial(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - streams the document and appends one initial version", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		streamReply(mocks.provider, "stop", "<summary_title>", "Login Page", "</summary_title>").Once()

		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)

		stream, err := svc.GenerateInitial(ctx, "")
		require.NoError(t, err)

		content, final := drain(stream)
		assert.Equal(t, "<summary_title>Login Page</summary_title>", content)
		assert.True(t, final.Done)
		assert.Empty(t, final.Error)
		assert.Equal(t, int64(1), final.VersionID)

		session := svc.Current()
		assert.Equal(t, content, session.ActiveDocument)
		assert.False(t, session.Generating)
		require.Len(t, session.Versions, 1)
		assert.Equal(t, model.SourceInitial, session.Versions[0].Source)
		assert.Equal(t, content, session.Versions[0].Content)
	})

	t.Run("Success - truncated generation still yields a version", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		streamReply(mocks.provider, llm.FinishReasonLength, "partial").Once()

		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)

		stream, err := svc.GenerateInitial(ctx, "")
		require.NoError(t, err)

		content, final := drain(stream)
		assert.True(t, final.Truncated)
		assert.Contains(t, content, "partial")

		session := svc.Current()
		require.Len(t, session.Versions, 1)
		assert.Contains(t, session.Versions[0].Content, "truncated")
	})

	t.Run("Success - caller cancellation does not abort the generation", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		gate := make(chan struct{})
		mocks.provider.On("CompleteStream", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				callCtx := args.Get(0).(context.Context)
				ch := args.Get(2).(chan<- llm.StreamChunk)
				<-gate
				if err := callCtx.Err(); err != nil {
					ch <- llm.StreamChunk{Err: err}
					close(ch)
					return
				}
				ch <- llm.StreamChunk{Content: "full document"}
				ch <- llm.StreamChunk{Done: true, FinishReason: "stop"}
				close(ch)
			}).
			Return(nil).Once()

		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)

		callerCtx, cancel := context.WithCancel(context.Background())
		stream, err := svc.GenerateInitial(callerCtx, "")
		require.NoError(t, err)
		cancel()
		close(gate)

		content, final := drain(stream)
		assert.Equal(t, "full document", content)
		assert.Empty(t, final.Error)

		session := svc.Current()
		assert.False(t, session.Generating)
		require.Len(t, session.Versions, 1)
		assert.Equal(t, model.SourceInitial, session.Versions[0].Source)
		assert.Equal(t, "full document", session.Versions[0].Content)
	})

	t.Run("Edge - empty stream records no version", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		streamReply(mocks.provider, "stop").Once()

		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)

		stream, err := svc.GenerateInitial(ctx, "")
		require.NoError(t, err)

		_, final := drain(stream)
		assert.Equal(t, service.InitialFailureNotice, final.Error)

		session := svc.Current()
		assert.Equal(t, service.InitialFailureNotice, session.ActiveDocument)
		assert.Empty(t, session.Versions)
		assert.False(t, session.Generating)
	})

	t.Run("Failure - upstream error becomes the document and an error version", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		mocks.provider.On("CompleteStream", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				ch := args.Get(2).(chan<- llm.StreamChunk)
				ch <- llm.StreamChunk{Err: &llm.APIError{Category: llm.CategoryServer, Status: 502, Message: "bad gateway"}}
				close(ch)
			}).
			Return(nil).Once()

		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)

		stream, err := svc.GenerateInitial(ctx, "")
		require.NoError(t, err)

		_, final := drain(stream)
		assert.NotEmpty(t, final.Error)

		session := svc.Current()
		assert.Contains(t, session.ActiveDocument, "bad gateway")
		require.Len(t, session.Versions, 1)
		assert.Equal(t, model.SourceError, session.Versions[0].Source)
	})

	t.Run("Failure - no session", func(t *testing.T) {
		svc, _ := setupSessionService(t)

		_, err := svc.GenerateInitial(ctx, "")
		assert.ErrorIs(t, err, apperrors.ErrMissingInput)
	})

	t.Run("Failure - busy rejects concurrent mutations without touching state", func(t *testing.T) {
		svc, mocks := setupSessionService(t)

		gate := make(chan struct{})
		mocks.provider.On("CompleteStream", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				ch := args.Get(2).(chan<- llm.StreamChunk)
				ch <- llm.StreamChunk{Content: "frag"}
				<-gate
				ch <- llm.StreamChunk{Done: true, FinishReason: "stop"}
				close(ch)
			}).
			Return(nil).Once()

		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)

		stream, err := svc.GenerateInitial(ctx, "")
		require.NoError(t, err)

		// Wait for the first fragment so the generation is known in flight.
		<-stream

		_, err = svc.GenerateInitial(ctx, "")
		assert.ErrorIs(t, err, apperrors.ErrBusy)
		_, err = svc.StartSession(ctx, testImage, model.TechStack{})
		assert.ErrorIs(t, err, apperrors.ErrBusy)
		_, err = svc.SubmitTurn(ctx, service.TurnRequest{Text: "change it"})
		assert.ErrorIs(t, err, apperrors.ErrBusy)
		err = svc.Commit(ctx)
		assert.ErrorIs(t, err, apperrors.ErrBusy)
		_, err = svc.Revert(ctx, 1)
		assert.ErrorIs(t, err, apperrors.ErrBusy)
		_, err = svc.UpdateDocument(ctx, "edit")
		assert.ErrorIs(t, err, apperrors.ErrBusy)
		_, err = svc.Export()
		assert.ErrorIs(t, err, apperrors.ErrBusy)
		_, err = svc.Import(ctx, []byte("{}"))
		assert.ErrorIs(t, err, apperrors.ErrBusy)

		close(gate)
		drain(stream)

		session := svc.Current()
		require.Len(t, session.Versions, 1)
		assert.Equal(t, model.SourceInitial, session.Versions[0].Source)
	})
}

func TestSessionService_SubmitTurn(t *testing.T) {
	ctx := context.Background()

	// seed brings a service to the state right after a successful initial
	// generation, with "base doc" as the active document.
	seed := func(t *testing.T, svc *service.SessionService) {
		t.Helper()
		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)
		_, err = svc.UpdateDocument(ctx, "base doc")
		require.NoError(t, err)
	}

	t.Run("Success - appends both turns and a refined version", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		streamReply(mocks.provider, "stop", "Updated Prompt:", " revised doc").Once()
		seed(t, svc)

		stream, err := svc.SubmitTurn(ctx, service.TurnRequest{Text: "make the header blue"})
		require.NoError(t, err)

		content, final := drain(stream)
		assert.Equal(t, "Updated Prompt: revised doc", content)
		assert.Equal(t, model.ModeUpdate, final.Mode)
		assert.NotZero(t, final.VersionID)

		session := svc.Current()
		assert.Equal(t, content, session.ActiveDocument)
		assert.Equal(t, "base doc", session.BaseDocument)
		require.Len(t, session.Turns, 2)
		assert.Equal(t, "user", session.Turns[0].Role)
		assert.Equal(t, "make the header blue", session.Turns[0].Text)
		assert.Equal(t, "assistant", session.Turns[1].Role)
		assert.Equal(t, content, session.Turns[1].Text)

		last := session.Versions[len(session.Versions)-1]
		assert.Equal(t, model.SourceRefined, last.Source)
	})

	t.Run("Success - answer reply is surfaced via mode", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		streamReply(mocks.provider, "stop", "Answer: the field is read-only").Once()
		seed(t, svc)

		stream, err := svc.SubmitTurn(ctx, service.TurnRequest{Text: "is the field editable?"})
		require.NoError(t, err)

		_, final := drain(stream)
		assert.Equal(t, model.ModeAnswer, final.Mode)
	})

	t.Run("Success - turn history is replayed on the next call", func(t *testing.T) {
		svc, mocks := setupSessionService(t)

		var secondCall *llm.ChatRequest
		streamReply(mocks.provider, "stop", "Answer: first").Once()
		mocks.provider.On("CompleteStream", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				secondCall = args.Get(1).(*llm.ChatRequest)
				ch := args.Get(2).(chan<- llm.StreamChunk)
				ch <- llm.StreamChunk{Content: "Answer: second"}
				ch <- llm.StreamChunk{Done: true, FinishReason: "stop"}
				close(ch)
			}).
			Return(nil).Once()
		seed(t, svc)

		stream, err := svc.SubmitTurn(ctx, service.TurnRequest{Text: "first question"})
		require.NoError(t, err)
		drain(stream)

		stream, err = svc.SubmitTurn(ctx, service.TurnRequest{Text: "second question"})
		require.NoError(t, err)
		drain(stream)

		// system + first user + first assistant + second user
		require.NotNil(t, secondCall)
		require.Len(t, secondCall.Messages, 4)
		assert.Equal(t, "first question", secondCall.Messages[1].Content.Text)
		assert.Equal(t, "Answer: first", secondCall.Messages[2].Content.Text)
		assert.Equal(t, "second question", secondCall.Messages[3].Content.Text)
	})

	t.Run("Failure - error reply becomes the document and an error version", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		mocks.provider.On("CompleteStream", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				ch := args.Get(2).(chan<- llm.StreamChunk)
				ch <- llm.StreamChunk{Err: &llm.APIError{Category: llm.CategoryRateLimit, Status: 429, Message: "slow down"}}
				close(ch)
			}).
			Return(nil).Once()
		seed(t, svc)

		stream, err := svc.SubmitTurn(ctx, service.TurnRequest{Text: "change it"})
		require.NoError(t, err)

		_, final := drain(stream)
		assert.NotEmpty(t, final.Error)

		session := svc.Current()
		assert.Contains(t, session.ActiveDocument, "slow down")
		// The failed turn is not recorded in the dialogue.
		assert.Empty(t, session.Turns)
		last := session.Versions[len(session.Versions)-1]
		assert.Equal(t, model.SourceError, last.Source)
	})

	t.Run("Failure - stream cut off mid-reply records an error version", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		mocks.provider.On("CompleteStream", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				ch := args.Get(2).(chan<- llm.StreamChunk)
				ch <- llm.StreamChunk{Content: "Updated Prompt: partial"}
				close(ch)
			}).
			Return(nil).Once()
		seed(t, svc)

		stream, err := svc.SubmitTurn(ctx, service.TurnRequest{Text: "change it"})
		require.NoError(t, err)

		_, final := drain(stream)
		assert.NotEmpty(t, final.Error)

		// The partial reply must not pass for a refined document.
		session := svc.Current()
		assert.Empty(t, session.Turns)
		last := session.Versions[len(session.Versions)-1]
		assert.Equal(t, model.SourceError, last.Source)
		assert.NotContains(t, last.Content, "Updated Prompt: partial")
	})

	t.Run("Failure - empty input", func(t *testing.T) {
		svc, _ := setupSessionService(t)
		seed(t, svc)

		_, err := svc.SubmitTurn(ctx, service.TurnRequest{})
		assert.ErrorIs(t, err, apperrors.ErrEmptyInput)
	})

	t.Run("Failure - no document to refine", func(t *testing.T) {
		svc, _ := setupSessionService(t)
		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)

		_, err = svc.SubmitTurn(ctx, service.TurnRequest{Text: "change it"})
		assert.ErrorIs(t, err, apperrors.ErrMissingInput)
	})

	t.Run("Failure - no session", func(t *testing.T) {
		svc, _ := setupSessionService(t)

		_, err := svc.SubmitTurn(ctx, service.TurnRequest{Text: "change it"})
		assert.ErrorIs(t, err, apperrors.ErrMissingInput)
	})
}

func TestSessionService_CommitAndRevert(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit anchors the base and clears the dialogue", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		streamReply(mocks.provider, "stop", "Updated Prompt: v2").Once()

		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)
		_, err = svc.UpdateDocument(ctx, "v1")
		require.NoError(t, err)

		stream, err := svc.SubmitTurn(ctx, service.TurnRequest{Text: "revise"})
		require.NoError(t, err)
		drain(stream)

		require.NoError(t, svc.Commit(ctx))

		session := svc.Current()
		assert.Equal(t, "Updated Prompt: v2", session.BaseDocument)
		assert.Equal(t, session.ActiveDocument, session.BaseDocument)
		assert.Empty(t, session.Turns)
	})

	t.Run("Revert restores a historic version and appends to the log", func(t *testing.T) {
		svc, _ := setupSessionService(t)

		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)
		_, err = svc.UpdateDocument(ctx, "version one") // id 1
		require.NoError(t, err)
		_, err = svc.UpdateDocument(ctx, "version two") // id 2
		require.NoError(t, err)

		session, err := svc.Revert(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, "version one", session.ActiveDocument)
		assert.Equal(t, "version one", session.BaseDocument)
		assert.Empty(t, session.Turns)
		require.Len(t, session.Versions, 3)
		assert.Equal(t, model.SourceHistoric, session.Versions[2].Source)
		assert.Equal(t, int64(3), session.Versions[2].ID)
		assert.Equal(t, "version one", session.Versions[2].Content)
	})

	t.Run("Revert to an unknown version fails", func(t *testing.T) {
		svc, _ := setupSessionService(t)
		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)

		_, err = svc.Revert(ctx, 99)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestSessionService_ExportImport(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - round trip preserves documents, versions and dialogue", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		streamReply(mocks.provider, "stop", "Answer: noted").Once()

		_, err := svc.StartSession(ctx, testImage, model.TechStack{Framework: "React"})
		require.NoError(t, err)
		_, err = svc.UpdateDocument(ctx, "the document")
		require.NoError(t, err)
		stream, err := svc.SubmitTurn(ctx, service.TurnRequest{Text: "a question"})
		require.NoError(t, err)
		drain(stream)

		data, err := svc.Export()
		require.NoError(t, err)
		assert.Contains(t, string(data), `"formatVersion": "1.0.1"`)

		restored, _ := setupSessionService(t)
		session, err := restored.Import(ctx, data)
		require.NoError(t, err)

		original := svc.Current()
		assert.Equal(t, original.ActiveDocument, session.ActiveDocument)
		assert.Equal(t, original.BaseDocument, session.BaseDocument)
		assert.Equal(t, original.Stack, session.Stack)
		assert.Equal(t, original.Turns, session.Turns)
		assert.Equal(t, original.Versions, session.Versions)

		// Version IDs continue after the highest imported one.
		session, err = restored.UpdateDocument(ctx, "post-import edit")
		require.NoError(t, err)
		last := session.Versions[len(session.Versions)-1]
		assert.Equal(t, original.Versions[len(original.Versions)-1].ID+1, last.ID)
	})

	t.Run("Failure - incompatible format leaves live state untouched", func(t *testing.T) {
		svc, _ := setupSessionService(t)
		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)
		_, err = svc.UpdateDocument(ctx, "live state")
		require.NoError(t, err)

		_, err = svc.Import(ctx, []byte(`{"formatVersion":"2.0.0"}`))
		assert.ErrorIs(t, err, apperrors.ErrIncompatibleSession)

		session := svc.Current()
		assert.Equal(t, "live state", session.ActiveDocument)
		require.Len(t, session.Versions, 1)
	})

	t.Run("Failure - corrupt record is rejected whole", func(t *testing.T) {
		svc, _ := setupSessionService(t)
		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)

		_, err = svc.Import(ctx, []byte(`{"formatVersion":`))
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.NotNil(t, svc.Current())
	})

	t.Run("Success - older compatible format is accepted", func(t *testing.T) {
		svc, _ := setupSessionService(t)

		record := `{"formatVersion":"1.0.0","initialImage":"` + testImage + `","activeDocument":"old doc"}`
		session, err := svc.Import(ctx, []byte(record))
		require.NoError(t, err)

		assert.Equal(t, "old doc", session.ActiveDocument)
		// A record without an explicit base anchors to the active document.
		assert.Equal(t, "old doc", session.BaseDocument)
	})

	t.Run("Failure - export without a session", func(t *testing.T) {
		svc, _ := setupSessionService(t)

		_, err := svc.Export()
		assert.ErrorIs(t, err, apperrors.ErrMissingInput)
	})
}

func TestSessionService_ValidateActive(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - returns the critique and records nothing", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		mocks.provider.On("Complete", mock.Anything, mock.Anything).
			Return("💡 Suggestion: name the empty state", nil).Once()

		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)
		_, err = svc.UpdateDocument(ctx, "the document")
		require.NoError(t, err)
		before := len(svc.Current().Versions)

		critique, err := svc.ValidateActive(ctx)
		require.NoError(t, err)
		assert.Contains(t, critique, "Suggestion")
		assert.Len(t, svc.Current().Versions, before)
	})

	t.Run("Failure - no session", func(t *testing.T) {
		svc, _ := setupSessionService(t)

		_, err := svc.ValidateActive(ctx)
		assert.ErrorIs(t, err, apperrors.ErrMissingInput)
	})
}

func TestSessionService_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - restores the latest saved session", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		record := &model.SessionRecord{
			FormatVersion:  model.SessionFormatVersion,
			Image:          testImage,
			ActiveDocument: "saved doc",
			BaseDocument:   "saved doc",
			Versions: []model.DocumentVersion{
				{ID: 1, Content: "saved doc", Source: model.SourceInitial},
			},
		}
		mocks.repo.On("LoadLatestSession", mock.Anything).Return("saved-id", record, nil).Once()

		svc.Restore(ctx)

		session := svc.Current()
		require.NotNil(t, session)
		assert.Equal(t, "saved-id", session.ID)
		assert.Equal(t, "saved doc", session.ActiveDocument)
		require.Len(t, session.Versions, 1)
	})

	t.Run("Edge - nothing saved leaves the service empty", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		mocks.repo.On("LoadLatestSession", mock.Anything).Return("", nil, apperrors.ErrNotFound).Once()

		svc.Restore(ctx)
		assert.Nil(t, svc.Current())
	})

	t.Run("Edge - incompatible saved record is skipped", func(t *testing.T) {
		svc, mocks := setupSessionService(t)
		record := &model.SessionRecord{FormatVersion: "0.9.0"}
		mocks.repo.On("LoadLatestSession", mock.Anything).Return("old-id", record, nil).Once()

		svc.Restore(ctx)
		assert.Nil(t, svc.Current())
	})
}

func TestSessionService_UpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _ := setupSessionService(t)
		_, err := svc.StartSession(ctx, testImage, model.TechStack{})
		require.NoError(t, err)

		stack := model.TechStack{Framework: "Svelte", ComponentLibrary: "Skeleton", AppType: "mobile", Temperature: 0.9}
		require.NoError(t, svc.UpdateSettings(ctx, stack))
		assert.Equal(t, stack, svc.Current().Stack)
	})

	t.Run("Failure - no session", func(t *testing.T) {
		svc, _ := setupSessionService(t)

		err := svc.UpdateSettings(ctx, testDefaults)
		assert.ErrorIs(t, err, apperrors.ErrMissingInput)
	})
}
