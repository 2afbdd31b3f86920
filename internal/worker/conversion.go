package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
	"github.com/hszk-dev/catalog/internal/usecase"
)

// ErrInvalidResourceID is returned when a conversion result does not address "<uuid>.<media type>".
var ErrInvalidResourceID = errors.New("invalid resource id")

// ParseResourceID splits a resource id of the form "<video id>.<media type>".
func ParseResourceID(resourceID string) (uuid.UUID, model.MediaType, error) {
	idPart, typePart, ok := strings.Cut(resourceID, ".")
	if !ok {
		return uuid.Nil, "", fmt.Errorf("%w: %q", ErrInvalidResourceID, resourceID)
	}

	id, err := uuid.Parse(idPart)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %q: %w", ErrInvalidResourceID, resourceID, err)
	}

	mediaType := model.MediaType(strings.ToUpper(typePart))
	if !mediaType.IsValid() {
		return uuid.Nil, "", fmt.Errorf("%w: unknown media type %q", ErrInvalidResourceID, typePart)
	}
	return id, mediaType, nil
}

// ConversionHandler applies encoder results to videos.
type ConversionHandler struct {
	videos usecase.VideoService
	logger *slog.Logger
}

func NewConversionHandler(videos usecase.VideoService, logger *slog.Logger) *ConversionHandler {
	return &ConversionHandler{videos: videos, logger: logger}
}

// Handle processes one conversion result. A nil return acknowledges the message;
// results that can never succeed are logged and acknowledged so they are not redelivered.
func (h *ConversionHandler) Handle(ctx context.Context, result repository.ConversionResult) error {
	videoID, mediaType, err := ParseResourceID(result.Video.ResourceID)
	if err != nil {
		h.logger.WarnContext(ctx, "discarding conversion result",
			slog.String("resource_id", result.Video.ResourceID),
			slog.String("error", err.Error()),
		)
		return nil
	}

	input := usecase.ProcessMediaInput{
		VideoID:         videoID,
		MediaType:       mediaType,
		Status:          model.MediaStatusCompleted,
		EncodedLocation: result.Video.EncodedVideoFolder,
	}
	if result.Error != "" || !strings.EqualFold(result.Status, string(model.MediaStatusCompleted)) {
		h.logger.WarnContext(ctx, "media conversion failed",
			slog.String("video_id", videoID.String()),
			slog.String("media_type", string(mediaType)),
			slog.String("status", result.Status),
			slog.String("error", result.Error),
		)
		input.Status = model.MediaStatusError
		input.EncodedLocation = ""
	}

	if err := h.videos.ProcessAudioVideoMedia(ctx, input); err != nil {
		if isPermanent(err) {
			h.logger.WarnContext(ctx, "conversion result rejected",
				slog.String("video_id", videoID.String()),
				slog.String("media_type", string(mediaType)),
				slog.String("error", err.Error()),
			)
			return nil
		}
		return fmt.Errorf("process media %s of video %s: %w", mediaType, videoID, err)
	}

	h.logger.InfoContext(ctx, "media processed",
		slog.String("video_id", videoID.String()),
		slog.String("media_type", string(mediaType)),
		slog.String("status", string(input.Status)),
	)
	return nil
}

func isPermanent(err error) bool {
	return errors.Is(err, usecase.ErrVideoNotFound) ||
		errors.Is(err, usecase.ErrMediaNotFound) ||
		errors.Is(err, usecase.ErrInvalidVideo)
}
