package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/avc-dev/linktree/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIngestPage_Success(t *testing.T) {
	// Arrange
	u, deps := newTestUsecase(t)
	ctx := context.Background()

	deps.notion.EXPECT().GetPage(mock.Anything, "page-1").
		Return(testPage(t, false, slugProp, titleProp, destProp, enabledProp, imageProp), nil).Once()

	deleteCall := deps.repo.EXPECT().DeleteLinkFields(mock.Anything, "promo",
		model.FieldDescription, model.FieldDetails, model.FieldIconEmoji, model.FieldCategory,
		model.FieldVideoURL, model.FieldFiles, model.FieldRedirectExternal,
	).Return(nil).Once()
	saveCall := deps.repo.EXPECT().SaveLink(mock.Anything, mock.MatchedBy(func(rec model.RedirectRecord) bool {
		return rec.Slug == "promo" &&
			rec.Destination == "https://example.com/spring" &&
			rec.Title == "Spring promo" &&
			rec.ImageURL == "https://cdn.example.com/spring.png" &&
			rec.LinkTreeEnabled
	})).Return(nil).Once()
	revalidateCall := deps.revalidator.EXPECT().RevalidateTag(mock.Anything, "linktree").Return(nil).Once()
	mock.InOrder(deleteCall, saveCall, revalidateCall)

	// Act
	rec, err := u.IngestPage(ctx, " page-1 ")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "promo", rec.Slug)
}

func TestIngestPage_MissingPageID(t *testing.T) {
	u, _ := newTestUsecase(t)

	_, err := u.IngestPage(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrMissingPageID)
}

func TestIngestPage_IncompletePage(t *testing.T) {
	tests := []struct {
		name  string
		props []string
	}{
		{name: "No slug and no destination", props: []string{titleProp, enabledProp}},
		{name: "No destination", props: []string{slugProp, titleProp}},
		{name: "No slug", props: []string{destProp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			u, deps := newTestUsecase(t)
			deps.notion.EXPECT().GetPage(mock.Anything, "page-1").Return(testPage(t, false, tt.props...), nil).Once()

			// Act
			_, err := u.IngestPage(context.Background(), "page-1")

			// Assert: ни записи, ни оповещения
			assert.ErrorIs(t, err, ErrIncompleteRecord)
			deps.repo.AssertNotCalled(t, "SaveLink", mock.Anything, mock.Anything)
			deps.alerter.AssertNotCalled(t, "Alert", mock.Anything, mock.Anything)
		})
	}
}

func TestIngestPage_NotionFailure(t *testing.T) {
	tests := []struct {
		name     string
		alertErr error
	}{
		{name: "Alert delivered", alertErr: nil},
		{name: "Alert failed too", alertErr: errors.New("slack down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			u, deps := newTestUsecase(t)
			notionErr := errors.New("notion 502")
			deps.notion.EXPECT().GetPage(mock.Anything, "page-1").Return(nil, notionErr).Once()
			deps.alerter.EXPECT().Alert(mock.Anything, mock.MatchedBy(func(msg string) bool {
				return assert.Contains(t, msg, "notion 502")
			})).Return(tt.alertErr).Once()

			// Act
			_, err := u.IngestPage(context.Background(), "page-1")

			// Assert
			assert.ErrorIs(t, err, notionErr)
			deps.repo.AssertNotCalled(t, "SaveLink", mock.Anything, mock.Anything)
		})
	}
}

func TestIngestPage_StaleDeletionFailureIsIgnored(t *testing.T) {
	u, deps := newTestUsecase(t)
	deps.notion.EXPECT().GetPage(mock.Anything, "page-1").
		Return(testPage(t, false, slugProp, destProp), nil).Once()
	deps.repo.EXPECT().DeleteLinkFields(mock.Anything, "promo", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("HDEL failed")).Once()
	deps.repo.EXPECT().SaveLink(mock.Anything, mock.Anything).Return(nil).Once()
	deps.revalidator.EXPECT().RevalidateTag(mock.Anything, "linktree").Return(nil).Once()

	_, err := u.IngestPage(context.Background(), "page-1")

	assert.NoError(t, err)
}

func TestIngestPage_SaveFailure(t *testing.T) {
	u, deps := newTestUsecase(t)
	saveErr := errors.New("redis unavailable")
	deps.notion.EXPECT().GetPage(mock.Anything, "page-1").
		Return(testPage(t, false, slugProp, destProp, imageProp), nil).Once()
	deps.repo.EXPECT().DeleteLinkFields(mock.Anything, "promo", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	deps.repo.EXPECT().SaveLink(mock.Anything, mock.Anything).Return(saveErr).Once()
	deps.alerter.EXPECT().Alert(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := u.IngestPage(context.Background(), "page-1")

	assert.ErrorIs(t, err, saveErr)
	deps.revalidator.AssertNotCalled(t, "RevalidateTag", mock.Anything, mock.Anything)
}

func TestIngestPage_RevalidationFailureIsIgnored(t *testing.T) {
	u, deps := newTestUsecase(t)
	deps.notion.EXPECT().GetPage(mock.Anything, "page-1").
		Return(testPage(t, false, slugProp, destProp, imageProp), nil).Once()
	deps.repo.EXPECT().DeleteLinkFields(mock.Anything, "promo", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	deps.repo.EXPECT().SaveLink(mock.Anything, mock.Anything).Return(nil).Once()
	deps.revalidator.EXPECT().RevalidateTag(mock.Anything, "linktree").Return(errors.New("hook 500")).Once()

	_, err := u.IngestPage(context.Background(), "page-1")

	assert.NoError(t, err)
}

func TestIngestPage_ArchivedPageIsDisabled(t *testing.T) {
	u, deps := newTestUsecase(t)
	deps.notion.EXPECT().GetPage(mock.Anything, "page-1").
		Return(testPage(t, true, slugProp, destProp, enabledProp, imageProp), nil).Once()
	deps.repo.EXPECT().DeleteLinkFields(mock.Anything, "promo", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	deps.repo.EXPECT().SaveLink(mock.Anything, mock.MatchedBy(func(rec model.RedirectRecord) bool {
		return !rec.LinkTreeEnabled
	})).Return(nil).Once()
	deps.revalidator.EXPECT().RevalidateTag(mock.Anything, "linktree").Return(nil).Once()

	rec, err := u.IngestPage(context.Background(), "page-1")

	require.NoError(t, err)
	assert.False(t, rec.LinkTreeEnabled)
}
