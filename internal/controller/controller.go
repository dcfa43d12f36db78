package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Skylark/internal/apperrors"
	"github.com/lshigami/Skylark/internal/dto"
	"github.com/lshigami/Skylark/internal/service"
	"github.com/lshigami/Skylark/internal/storage"
	"github.com/rs/zerolog/log"
)

const maxMediaFiles = 10

type Controller struct {
	questionSvc   service.QuestionService
	recordingSvc  service.RecordingService
	transcription service.TranscriptionService
	media         *storage.MediaStore
}

func NewController(
	questionSvc service.QuestionService,
	recordingSvc service.RecordingService,
	transcription service.TranscriptionService,
	media *storage.MediaStore,
) *Controller {
	return &Controller{
		questionSvc:   questionSvc,
		recordingSvc:  recordingSvc,
		transcription: transcription,
		media:         media,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/questions", ctrl.CreateQuestionHandler)
		api.GET("/questions", ctrl.ListQuestionsHandler)
		api.POST("/recordings", ctrl.CreateRecordingHandler)
		api.POST("/transcribe", ctrl.TranscribeHandler)
	}
}

// CreateQuestionHandler handles POST /api/questions. Multipart fields: text,
// description, order_number, show_spectrum, correct_answer; up to
// maxMediaFiles attached media_files.
func (ctrl *Controller) CreateQuestionHandler(c *gin.Context) {
	text := c.PostForm("text")
	orderStr := c.PostForm("order_number")
	if text == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "text is required"})
		return
	}
	if orderStr == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "order_number is required"})
		return
	}
	orderNumber, err := strconv.Atoi(orderStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "order_number must be an integer"})
		return
	}
	showSpectrum, _ := strconv.ParseBool(c.DefaultPostForm("show_spectrum", "false"))

	var mediaPaths []string
	if form, err := c.MultipartForm(); err == nil {
		files := form.File["media_files"]
		if len(files) > maxMediaFiles {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "too many media files (max 10)"})
			return
		}
		mediaPaths, err = ctrl.media.SaveAll(files)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to store question media")
			ctrl.writeError(c, err, "failed to store media files")
			return
		}
	}

	resp, err := ctrl.questionSvc.CreateQuestion(dto.CreateQuestionRequest{
		Text:          text,
		Description:   c.PostForm("description"),
		MediaFiles:    mediaPaths,
		CorrectAnswer: c.PostForm("correct_answer"),
		ShowSpectrum:  showSpectrum,
		OrderNumber:   &orderNumber,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		ctrl.writeError(c, err, "failed to create question")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListQuestionsHandler handles GET /api/questions.
func (ctrl *Controller) ListQuestionsHandler(c *gin.Context) {
	questions, err := ctrl.questionSvc.ListQuestions()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to retrieve questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// CreateRecordingHandler handles POST /api/recordings. Fields: user_id,
// question_id; file: recording.
func (ctrl *Controller) CreateRecordingHandler(c *gin.Context) {
	userID := c.PostForm("user_id")
	questionIDStr := c.PostForm("question_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "user_id is required"})
		return
	}
	if questionIDStr == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "question_id is required"})
		return
	}
	questionID, err := strconv.ParseUint(questionIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "question_id must be an integer"})
		return
	}

	fh, err := c.FormFile("recording")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "no recording file uploaded"})
		return
	}
	recordingURL, err := ctrl.media.Save(fh)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to store recording file")
		ctrl.writeError(c, err, "failed to store recording file")
		return
	}

	resp, err := ctrl.recordingSvc.CreateRecording(dto.CreateRecordingRequest{
		UserID:       userID,
		QuestionID:   uint(questionID),
		RecordingURL: recordingURL,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create recording")
		ctrl.writeError(c, err, "failed to create recording")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TranscribeHandler handles POST /api/transcribe. The uploaded audio is kept
// only for the duration of the provider call; the scratch file is deleted on
// every exit path once the attempt completes.
func (ctrl *Controller) TranscribeHandler(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "no audio file uploaded"})
		return
	}
	questionID := c.PostForm("question_id")

	scratchPath, err := ctrl.media.SaveScratch(fh)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to store audio for transcription")
		ctrl.writeError(c, err, "failed to store audio file")
		return
	}
	defer func() {
		if err := ctrl.media.Remove(scratchPath); err != nil {
			log.Warn().Err(err).Str("path", scratchPath).Msg("Failed to delete transcription scratch file")
		}
	}()

	text, err := ctrl.transcription.Transcribe(context.Background(), scratchPath)
	if err != nil {
		log.Error().Err(err).Str("questionID", questionID).Msg("Transcription failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "transcription failed"})
		return
	}
	if text == "" {
		log.Error().Str("questionID", questionID).Msg("Transcription returned empty result")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "transcription returned empty result"})
		return
	}
	c.JSON(http.StatusOK, dto.TranscriptionResponse{Text: text})
}

// writeError maps validation failures to 400 with their descriptive message
// and everything else to 500 with a generic one.
func (ctrl *Controller) writeError(c *gin.Context, err error, generic string) {
	if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: generic})
}
