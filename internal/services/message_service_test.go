package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"rental-chat-service/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	renterID = "renter-1"
	ownerID  = "owner-1"
	carID    = "car-1"
)

type messageFixture struct {
	svc           *MessageService
	messages      *memMessageStore
	notifications *memNotificationStore
	now           time.Time
}

func newMessageFixture(t *testing.T, uploader ImageUploader, rooms RoomNotifier) *messageFixture {
	t.Helper()
	messages := newMemMessageStore()
	notifications := &memNotificationStore{}
	users := newMemUserStore(
		&models.User{ID: renterID, Name: "Alice"},
		&models.User{ID: ownerID, Name: "Bob"},
	)
	cars := memCarStore{carID: {ID: carID, OwnerID: ownerID, Brand: "Tesla", Model: "Model 3"}}

	f := &messageFixture{
		messages:      messages,
		notifications: notifications,
		now:           time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	f.svc = NewMessageService(messages, NewNotificationService(notifications, messages, users, cars), uploader, 20*time.Minute)
	f.svc.now = func() time.Time { return f.now }
	if rooms != nil {
		f.svc.SetRoomNotifier(rooms)
	}
	return f
}

func (f *messageFixture) send(t *testing.T, content string) *models.MessageResponse {
	t.Helper()
	msg, err := f.svc.Create(context.Background(), CreateMessageInput{
		SenderID: renterID,
		CreateMessageRequest: models.CreateMessageRequest{
			ReceiverID: ownerID,
			CarID:      carID,
			Content:    content,
		},
	})
	require.NoError(t, err)
	return msg
}

func TestMessageService_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		f := newMessageFixture(t, nil, nil)

		_, err := f.svc.Create(context.Background(), CreateMessageInput{SenderID: renterID})
		var verrs models.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs, "receiverId")
		assert.Contains(t, verrs, "carId")
		assert.Contains(t, verrs, "content")

		_, err = f.svc.Create(context.Background(), CreateMessageInput{
			SenderID:             renterID,
			CreateMessageRequest: models.CreateMessageRequest{ReceiverID: renterID, CarID: carID, Content: "hi"},
		})
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs, "receiverId")
	})

	t.Run("stores message without filtering content", func(t *testing.T) {
		f := newMessageFixture(t, nil, nil)

		msg := f.send(t, "  is this damn car still available?  ")
		assert.Equal(t, "is this damn car still available?", msg.Content)
		assert.Equal(t, []string{}, msg.Images)
		assert.False(t, msg.IsEdited)
		assert.Equal(t, f.now, msg.CreatedAt)
	})

	t.Run("creates notification pair", func(t *testing.T) {
		f := newMessageFixture(t, nil, nil)

		msg := f.send(t, "hello")

		received := f.notifications.forUser(ownerID)
		require.Len(t, received, 1)
		assert.Equal(t, models.NotificationInquiryReceived, received[0].Type)
		assert.Equal(t, msg.ID, received[0].MessageID)
		assert.Contains(t, received[0].Title, "Alice")
		assert.Contains(t, received[0].Title, "Tesla Model 3")

		sent := f.notifications.forUser(renterID)
		require.Len(t, sent, 1)
		assert.Equal(t, models.NotificationInquirySent, sent[0].Type)
	})

	t.Run("failed upload drops the image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uploader := NewMockImageUploader(ctrl)

		good := &multipart.FileHeader{Filename: "front.jpg"}
		bad := &multipart.FileHeader{Filename: "back.jpg"}
		uploader.EXPECT().UploadImage(gomock.Any(), good).Return("http://minio/front.jpg", nil)
		uploader.EXPECT().UploadImage(gomock.Any(), bad).Return("", errors.New("minio down"))

		f := newMessageFixture(t, uploader, nil)
		msg, err := f.svc.Create(context.Background(), CreateMessageInput{
			SenderID:             renterID,
			CreateMessageRequest: models.CreateMessageRequest{ReceiverID: ownerID, CarID: carID},
			Images:               []*multipart.FileHeader{good, bad},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"http://minio/front.jpg"}, msg.Images)
		assert.Equal(t, "Sent a photo", f.notifications.forUser(ownerID)[0].Body)
	})

	t.Run("image only message with every upload failing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uploader := NewMockImageUploader(ctrl)
		uploader.EXPECT().UploadImage(gomock.Any(), gomock.Any()).Return("", errors.New("minio down"))

		f := newMessageFixture(t, uploader, nil)
		_, err := f.svc.Create(context.Background(), CreateMessageInput{
			SenderID:             renterID,
			CreateMessageRequest: models.CreateMessageRequest{ReceiverID: ownerID, CarID: carID},
			Images:               []*multipart.FileHeader{{Filename: "a.png"}},
		})
		var verrs models.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs, "images")
	})
}

func TestMessageService_Edit(t *testing.T) {
	t.Run("within window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := NewMockRoomNotifier(ctrl)
		f := newMessageFixture(t, nil, rooms)
		msg := f.send(t, "hello")

		rooms.EXPECT().MessageUpdated(gomock.Any(), gomock.Any()).Do(func(_ context.Context, m models.MessageResponse) {
			assert.Equal(t, msg.ID, m.ID)
			assert.Equal(t, "hello there", m.Content)
		})

		f.now = f.now.Add(19 * time.Minute)
		edited, err := f.svc.Edit(context.Background(), renterID, msg.ID, "hello there")
		require.NoError(t, err)
		assert.True(t, edited.IsEdited)
		assert.Equal(t, "hello there", edited.Content)
	})

	t.Run("after window", func(t *testing.T) {
		f := newMessageFixture(t, nil, nil)
		msg := f.send(t, "hello")

		f.now = f.now.Add(20*time.Minute + time.Second)
		_, err := f.svc.Edit(context.Background(), renterID, msg.ID, "too late")
		assert.ErrorIs(t, err, ErrEditWindowExpired)

		stored, err := f.svc.FindByID(context.Background(), msg.ID)
		require.NoError(t, err)
		assert.Equal(t, "hello", stored.Content)
		assert.False(t, stored.IsEdited)
	})

	t.Run("window closes between check and update", func(t *testing.T) {
		f := newMessageFixture(t, nil, nil)
		msg := f.send(t, "hello")
		f.now = f.now.Add(19 * time.Minute)

		// guarded update with a later cutoff than the pre-check used
		_, err := f.messages.UpdateContent(context.Background(), msg.ID, renterID, "x", f.now.Add(-time.Minute), f.now)
		assert.Error(t, err)
		assert.ErrorIs(t, f.svc.explainNoMatch(context.Background(), msg.ID, err), ErrEditWindowExpired)
	})

	t.Run("not sender", func(t *testing.T) {
		f := newMessageFixture(t, nil, nil)
		msg := f.send(t, "hello")

		_, err := f.svc.Edit(context.Background(), ownerID, msg.ID, "hijack")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown message", func(t *testing.T) {
		f := newMessageFixture(t, nil, nil)
		_, err := f.svc.Edit(context.Background(), renterID, "665f1c2e8b3e4a0012345678", "x")
		assert.ErrorIs(t, err, ErrMessageNotFound)
	})

	t.Run("empty content", func(t *testing.T) {
		f := newMessageFixture(t, nil, nil)
		msg := f.send(t, "hello")
		_, err := f.svc.Edit(context.Background(), renterID, msg.ID, "   ")
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("deleted message", func(t *testing.T) {
		f := newMessageFixture(t, nil, nil)
		msg := f.send(t, "hello")
		_, err := f.svc.Delete(context.Background(), renterID, msg.ID)
		require.NoError(t, err)

		_, err = f.svc.Edit(context.Background(), renterID, msg.ID, "again")
		assert.ErrorIs(t, err, ErrMessageDeleted)
	})
}

func TestMessageService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	rooms := NewMockRoomNotifier(ctrl)
	f := newMessageFixture(t, nil, rooms)

	msg, err := f.svc.Create(context.Background(), CreateMessageInput{
		SenderID:             renterID,
		CreateMessageRequest: models.CreateMessageRequest{ReceiverID: ownerID, CarID: carID, Content: "secret"},
	})
	require.NoError(t, err)
	other := f.send(t, "still here")

	rooms.EXPECT().MessageDeleted(gomock.Any(), gomock.Any())

	deleted, err := f.svc.Delete(context.Background(), renterID, msg.ID)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)
	assert.Equal(t, models.DeletedMessagePlaceholder, deleted.Content)

	t.Run("kept by id with metadata", func(t *testing.T) {
		got, err := f.svc.FindByID(context.Background(), msg.ID)
		require.NoError(t, err)
		assert.Equal(t, msg.ID, got.ID)
		assert.Equal(t, renterID, got.SenderID)
		assert.Equal(t, ownerID, got.ReceiverID)
		assert.Equal(t, carID, got.CarID)
		assert.Equal(t, msg.CreatedAt, got.CreatedAt)
		assert.Equal(t, models.DeletedMessagePlaceholder, got.Content)
		assert.Empty(t, got.Images)
	})

	t.Run("hidden from conversation", func(t *testing.T) {
		conv, err := f.svc.Conversation(context.Background(), ownerID, renterID, carID)
		require.NoError(t, err)
		require.Equal(t, 1, conv.Total)
		assert.Equal(t, other.ID, conv.Items[0].ID)
	})

	t.Run("outside window", func(t *testing.T) {
		late := f.send(t, "late")
		f.now = f.now.Add(21 * time.Minute)
		_, err := f.svc.Delete(context.Background(), renterID, late.ID)
		assert.ErrorIs(t, err, ErrEditWindowExpired)
	})
}

func TestMessageService_Conversation(t *testing.T) {
	f := newMessageFixture(t, nil, nil)

	first := f.send(t, "first")
	f.now = f.now.Add(time.Minute)
	reply, err := f.svc.Create(context.Background(), CreateMessageInput{
		SenderID:             ownerID,
		CreateMessageRequest: models.CreateMessageRequest{ReceiverID: renterID, CarID: carID, Content: "reply"},
	})
	require.NoError(t, err)
	f.now = f.now.Add(time.Minute)
	_, err = f.svc.Create(context.Background(), CreateMessageInput{
		SenderID:             renterID,
		CreateMessageRequest: models.CreateMessageRequest{ReceiverID: ownerID, CarID: "car-2", Content: "other car"},
	})
	require.NoError(t, err)

	all, err := f.svc.Conversation(context.Background(), renterID, ownerID, "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, first.ID, all.Items[0].ID)
	assert.Equal(t, reply.ID, all.Items[1].ID)

	scoped, err := f.svc.Conversation(context.Background(), ownerID, renterID, carID)
	require.NoError(t, err)
	assert.Equal(t, 2, scoped.Total)
}

func TestMessageService_Receipts(t *testing.T) {
	f := newMessageFixture(t, nil, nil)
	msg := f.send(t, "hello")

	_, err := f.svc.MarkDelivered(context.Background(), msg.ID, renterID)
	assert.ErrorIs(t, err, ErrForbidden)

	delivered, err := f.svc.MarkDelivered(context.Background(), msg.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, renterID, delivered.SenderID)

	read, err := f.svc.MarkRead(context.Background(), ownerID, msg.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)
	assert.True(t, read.IsDelivered)
}
