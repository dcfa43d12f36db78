package repository

import (
	"fmt"
	"testing"

	"github.com/lshigami/Skylark/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Named shared-cache memory DB so every pooled connection sees the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Question{}, &model.Recording{}))
	return db
}

func TestQuestionCreateAssignsID(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))

	q := model.Question{
		Text:        "Identify the bird call",
		MediaFiles:  model.MediaFileList{"/uploads/1700000000000-call.wav"},
		OrderNumber: 1,
	}
	require.NoError(t, repo.Create(&q))
	assert.Equal(t, uint(1), q.ID)
}

func TestQuestionListOrderedByOrderNumber(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))

	for _, n := range []int{5, 1, 3} {
		require.NoError(t, repo.Create(&model.Question{Text: "q", OrderNumber: n}))
	}

	questions, err := repo.FindAllOrdered()
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, 1, questions[0].OrderNumber)
	assert.Equal(t, 3, questions[1].OrderNumber)
	assert.Equal(t, 5, questions[2].OrderNumber)
}

func TestQuestionMediaFilesRoundTripThroughStore(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))

	media := model.MediaFileList{"/uploads/a.wav", "/uploads/b.ogg", "/uploads/c.mp3"}
	require.NoError(t, repo.Create(&model.Question{Text: "q", MediaFiles: media, OrderNumber: 2}))

	questions, err := repo.FindAllOrdered()
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, media, questions[0].MediaFiles)
}

func TestQuestionEmptyMediaFilesRoundTrip(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))

	require.NoError(t, repo.Create(&model.Question{Text: "q", MediaFiles: model.MediaFileList{}, OrderNumber: 1}))

	questions, err := repo.FindAllOrdered()
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, model.MediaFileList{}, questions[0].MediaFiles)
}

func TestRecordingCreateWithoutQuestionCheck(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordingRepository(db)

	// question_id 999 does not exist; insert must still succeed.
	rec := model.Recording{UserID: "user-42", QuestionID: 999, RecordingURL: "/uploads/rec.wav"}
	require.NoError(t, repo.Create(&rec))
	assert.Equal(t, uint(1), rec.ID)
}
