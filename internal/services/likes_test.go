package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/soulsync/internal/models"
	"github.com/sbilibin2017/soulsync/internal/repositories"
	"github.com/sbilibin2017/soulsync/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type likeMocks struct {
	reader    *services.MockLikeReader
	writer    *services.MockLikeWriter
	tracks    *services.MockLikedTrackGetter
	publisher *services.MockLikeEventPublisher
}

func newLikeService(t *testing.T) (*services.LikeService, likeMocks) {
	ctrl := gomock.NewController(t)
	m := likeMocks{
		reader:    services.NewMockLikeReader(ctrl),
		writer:    services.NewMockLikeWriter(ctrl),
		tracks:    services.NewMockLikedTrackGetter(ctrl),
		publisher: services.NewMockLikeEventPublisher(ctrl),
	}
	return services.NewLikeService(m.reader, m.writer, m.tracks, m.publisher), m
}

// eventOf matches a published like event by type, user and track.
type eventOf struct {
	typ     string
	userID  uuid.UUID
	trackID uuid.UUID
}

func (e eventOf) Matches(x interface{}) bool {
	ev, ok := x.(models.LikeEvent)
	return ok && ev.Type == e.typ && ev.UserID == e.userID && ev.TrackID == e.trackID && ev.EventID != ""
}

func (e eventOf) String() string { return "like event " + e.typ }

func TestLikeService_ListLikes(t *testing.T) {
	svc, m := newLikeService(t)
	userID := uuid.New()
	likes := []models.Like{{LikeID: uuid.New()}, {LikeID: uuid.New()}}

	m.reader.EXPECT().ListByUser(gomock.Any(), userID, 0, 100).Return(likes, nil)
	got, err := svc.ListLikes(context.Background(), userID, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, likes, got)

	_, err = svc.ListLikes(context.Background(), userID, -1, 100)
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestLikeService_CreateLike(t *testing.T) {
	userID := uuid.New()
	trackArt := "https://img/track.png"
	override := "https://img/override.png"
	track := &models.Track{TrackID: uuid.New(), Title: "Song", ArtworkURL: &trackArt}
	plain := &models.Track{TrackID: track.TrackID, Title: "Song"}

	tests := []struct {
		name    string
		artwork *string
		setup   func(m likeMocks)
		wantArt *string
		wantErr error
	}{
		{
			name: "falls back to track artwork",
			setup: func(m likeMocks) {
				m.tracks.EXPECT().GetByID(gomock.Any(), track.TrackID).Return(track, nil)
				m.reader.EXPECT().Exists(gomock.Any(), userID, track.TrackID).Return(false, nil)
				m.writer.EXPECT().Save(gomock.Any(), userID, track.TrackID, &trackArt).
					Return(&models.Like{LikeID: uuid.New(), UserID: userID, TrackID: track.TrackID, ArtworkURL: &trackArt}, nil)
				m.publisher.EXPECT().Publish(gomock.Any(), eventOf{models.LikeCreated, userID, track.TrackID}).Return(nil)
			},
			wantArt: &trackArt,
		},
		{
			name:    "override wins",
			artwork: &override,
			setup: func(m likeMocks) {
				m.tracks.EXPECT().GetByID(gomock.Any(), track.TrackID).Return(track, nil)
				m.reader.EXPECT().Exists(gomock.Any(), userID, track.TrackID).Return(false, nil)
				m.writer.EXPECT().Save(gomock.Any(), userID, track.TrackID, &override).
					Return(&models.Like{LikeID: uuid.New(), UserID: userID, TrackID: track.TrackID, ArtworkURL: &override}, nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantArt: &override,
		},
		{
			name:    "empty override and no track artwork",
			artwork: strPtr(""),
			setup: func(m likeMocks) {
				m.tracks.EXPECT().GetByID(gomock.Any(), track.TrackID).Return(plain, nil)
				m.reader.EXPECT().Exists(gomock.Any(), userID, track.TrackID).Return(false, nil)
				m.writer.EXPECT().Save(gomock.Any(), userID, track.TrackID, nil).
					Return(&models.Like{LikeID: uuid.New(), UserID: userID, TrackID: track.TrackID}, nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name: "track not found",
			setup: func(m likeMocks) {
				m.tracks.EXPECT().GetByID(gomock.Any(), track.TrackID).Return(nil, nil)
			},
			wantErr: services.ErrTrackNotFound,
		},
		{
			name: "already liked",
			setup: func(m likeMocks) {
				m.tracks.EXPECT().GetByID(gomock.Any(), track.TrackID).Return(track, nil)
				m.reader.EXPECT().Exists(gomock.Any(), userID, track.TrackID).Return(true, nil)
			},
			wantErr: services.ErrLikeAlreadyExists,
		},
		{
			name: "liked concurrently",
			setup: func(m likeMocks) {
				m.tracks.EXPECT().GetByID(gomock.Any(), track.TrackID).Return(track, nil)
				m.reader.EXPECT().Exists(gomock.Any(), userID, track.TrackID).Return(false, nil)
				m.writer.EXPECT().Save(gomock.Any(), userID, track.TrackID, &trackArt).Return(nil, repositories.ErrConflict)
			},
			wantErr: services.ErrLikeAlreadyExists,
		},
		{
			name:    "artwork with nul byte",
			artwork: strPtr("https://img/\x00.png"),
			setup:   func(m likeMocks) {},
			wantErr: services.ErrInvalidInput,
		},
		{
			name:    "artwork not utf-8",
			artwork: strPtr("https://img/\xff.png"),
			setup:   func(m likeMocks) {},
			wantErr: services.ErrInvalidInput,
		},
		{
			name:    "artwork rejected by the store",
			artwork: &override,
			setup: func(m likeMocks) {
				m.tracks.EXPECT().GetByID(gomock.Any(), track.TrackID).Return(track, nil)
				m.reader.EXPECT().Exists(gomock.Any(), userID, track.TrackID).Return(false, nil)
				m.writer.EXPECT().Save(gomock.Any(), userID, track.TrackID, &override).
					Return(nil, fmt.Errorf("%w: invalid byte sequence", repositories.ErrInvalidValue))
			},
			wantErr: services.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newLikeService(t)
			tt.setup(m)

			like, err := svc.CreateLike(context.Background(), userID, track.TrackID, tt.artwork)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, like)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantArt, like.ArtworkURL)
			require.NotNil(t, like.Track)
			assert.Equal(t, "Song", like.Track.Title)
		})
	}
}

func TestLikeService_CreateLikeWithoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockLikeReader(ctrl)
	writer := services.NewMockLikeWriter(ctrl)
	tracks := services.NewMockLikedTrackGetter(ctrl)
	svc := services.NewLikeService(reader, writer, tracks, nil)

	userID, trackID := uuid.New(), uuid.New()
	tracks.EXPECT().GetByID(gomock.Any(), trackID).Return(&models.Track{TrackID: trackID}, nil)
	reader.EXPECT().Exists(gomock.Any(), userID, trackID).Return(false, nil)
	writer.EXPECT().Save(gomock.Any(), userID, trackID, nil).Return(&models.Like{TrackID: trackID}, nil)

	_, err := svc.CreateLike(context.Background(), userID, trackID, nil)
	assert.NoError(t, err)
}

func TestLikeService_DeleteLike(t *testing.T) {
	svc, m := newLikeService(t)
	ctx := context.Background()
	userID, trackID := uuid.New(), uuid.New()

	m.writer.EXPECT().Delete(gomock.Any(), userID, trackID).Return(true, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), eventOf{models.LikeDeleted, userID, trackID}).Return(nil)
	assert.NoError(t, svc.DeleteLike(ctx, userID, trackID))

	m.writer.EXPECT().Delete(gomock.Any(), userID, trackID).Return(false, nil)
	assert.ErrorIs(t, svc.DeleteLike(ctx, userID, trackID), services.ErrLikeNotFound)
}

func TestLikeService_CheckLike(t *testing.T) {
	svc, m := newLikeService(t)
	ctx := context.Background()
	userID, trackID := uuid.New(), uuid.New()

	m.reader.EXPECT().Exists(gomock.Any(), userID, trackID).Return(true, nil)
	ok, err := svc.CheckLike(ctx, userID, trackID)
	require.NoError(t, err)
	assert.True(t, ok)

	m.reader.EXPECT().Exists(gomock.Any(), userID, trackID).Return(false, errors.New("db error"))
	ok, err = svc.CheckLike(ctx, userID, trackID)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestLikeService_SearchLikes(t *testing.T) {
	svc, m := newLikeService(t)
	ctx := context.Background()
	userID := uuid.New()

	got, err := svc.SearchLikes(ctx, userID, "a", 0, 20)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	likes := []models.Like{{LikeID: uuid.New()}}
	m.reader.EXPECT().SearchByUser(gomock.Any(), userID, "ali", 0, 20).Return(likes, nil)
	got, err = svc.SearchLikes(ctx, userID, " ali ", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, likes, got)

	m.reader.EXPECT().SearchByUser(gomock.Any(), userID, "ali", 0, 20).Return(nil, errors.New("timeout"))
	_, err = svc.SearchLikes(ctx, userID, "ali", 0, 20)
	assert.ErrorIs(t, err, services.ErrBackingStoreUnavailable)

	m.reader.EXPECT().SearchByUser(gomock.Any(), userID, "ali", 0, 20).
		Return(nil, fmt.Errorf("%w: invalid byte sequence", repositories.ErrInvalidValue))
	_, err = svc.SearchLikes(ctx, userID, "ali", 0, 20)
	assert.ErrorIs(t, err, services.ErrInvalidInput)
	assert.NotErrorIs(t, err, services.ErrBackingStoreUnavailable)

	for _, q := range []string{"\xff\xfe", "ab\x00"} {
		_, err = svc.SearchLikes(ctx, userID, q, 0, 20)
		assert.ErrorIs(t, err, services.ErrInvalidInput, "query %q", q)
	}
}
