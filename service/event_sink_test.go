package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"youtube-trigger-sidecar/mocks"
	"youtube-trigger-sidecar/models"
)

func TestLogEventSink_Emit(t *testing.T) {
	sink := NewLogEventSink(nil)
	event := models.NewTriggerEvent("new_videos", "vid1", 1, nil)

	handle, err := sink.Emit(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, event.ID, handle)
}

func TestRepositoryEventSink_Emit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	event := models.NewTriggerEvent("new_comments", "c1", 2, nil)
	storedID := uuid.New()

	mockRepo := mocks.NewMockEventRepository(ctrl)
	mockRepo.EXPECT().SaveEvent(gomock.Any(), event).Return(storedID, nil)

	sink := NewRepositoryEventSink(mockRepo, nil)

	handle, err := sink.Emit(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, storedID, handle)
}

func TestRepositoryEventSink_Emit_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEventRepository(ctrl)
	mockRepo.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).Return(uuid.Nil, fmt.Errorf("connection refused"))

	sink := NewRepositoryEventSink(mockRepo, nil)

	handle, err := sink.Emit(context.Background(), models.NewTriggerEvent("new_videos", "vid1", 1, nil))
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, handle)
}
