package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
	"github.com/hszk-dev/catalog/internal/usecase"
)

type mockVideoService struct {
	usecase.VideoService
	processFunc func(ctx context.Context, input usecase.ProcessMediaInput) error
}

func (m *mockVideoService) ProcessAudioVideoMedia(ctx context.Context, input usecase.ProcessMediaInput) error {
	return m.processFunc(ctx, input)
}

func TestParseResourceID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		input    string
		wantType model.MediaType
		wantErr  bool
	}{
		{name: "video", input: id.String() + ".VIDEO", wantType: model.MediaTypeVideo},
		{name: "trailer lower case", input: id.String() + ".trailer", wantType: model.MediaTypeTrailer},
		{name: "missing type", input: id.String(), wantErr: true},
		{name: "unknown type", input: id.String() + ".BANNER", wantErr: true},
		{name: "bad uuid", input: "abc.VIDEO", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, gotType, err := ParseResourceID(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidResourceID) {
					t.Errorf("ParseResourceID() error = %v, want ErrInvalidResourceID", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseResourceID() unexpected error = %v", err)
			}
			if gotID != id {
				t.Errorf("id = %v, want %v", gotID, id)
			}
			if gotType != tt.wantType {
				t.Errorf("media type = %v, want %v", gotType, tt.wantType)
			}
		})
	}
}

func TestConversionHandler_Handle(t *testing.T) {
	id := uuid.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	errTransient := errors.New("connection refused")

	tests := []struct {
		name       string
		result     repository.ConversionResult
		processErr error
		wantCalled bool
		wantStatus model.MediaStatus
		wantFolder string
		wantErr    bool
	}{
		{
			name: "completed",
			result: repository.ConversionResult{
				Status: "COMPLETED",
				Video:  repository.ConversionResultVideo{ResourceID: id.String() + ".VIDEO", EncodedVideoFolder: "encoded/1"},
			},
			wantCalled: true,
			wantStatus: model.MediaStatusCompleted,
			wantFolder: "encoded/1",
		},
		{
			name: "encoder error marks media failed",
			result: repository.ConversionResult{
				Error:  "codec not supported",
				Status: "ERROR",
				Video:  repository.ConversionResultVideo{ResourceID: id.String() + ".TRAILER", EncodedVideoFolder: "encoded/2"},
			},
			wantCalled: true,
			wantStatus: model.MediaStatusError,
		},
		{
			name: "malformed resource id is acknowledged",
			result: repository.ConversionResult{
				Status: "COMPLETED",
				Video:  repository.ConversionResultVideo{ResourceID: "nope"},
			},
		},
		{
			name: "missing media is acknowledged",
			result: repository.ConversionResult{
				Status: "COMPLETED",
				Video:  repository.ConversionResultVideo{ResourceID: id.String() + ".VIDEO"},
			},
			processErr: usecase.ErrMediaNotFound,
			wantCalled: true,
			wantStatus: model.MediaStatusCompleted,
		},
		{
			name: "unknown video is acknowledged",
			result: repository.ConversionResult{
				Status: "COMPLETED",
				Video:  repository.ConversionResultVideo{ResourceID: id.String() + ".VIDEO"},
			},
			processErr: usecase.ErrVideoNotFound,
			wantCalled: true,
			wantStatus: model.MediaStatusCompleted,
		},
		{
			name: "transient failure is returned",
			result: repository.ConversionResult{
				Status: "COMPLETED",
				Video:  repository.ConversionResultVideo{ResourceID: id.String() + ".VIDEO"},
			},
			processErr: errTransient,
			wantCalled: true,
			wantStatus: model.MediaStatusCompleted,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			var got usecase.ProcessMediaInput
			svc := &mockVideoService{
				processFunc: func(ctx context.Context, input usecase.ProcessMediaInput) error {
					called = true
					got = input
					return tt.processErr
				},
			}

			err := NewConversionHandler(svc, logger).Handle(context.Background(), tt.result)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Handle() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errTransient) {
				t.Errorf("Handle() error = %v, want wrapped %v", err, errTransient)
			}
			if called != tt.wantCalled {
				t.Fatalf("ProcessAudioVideoMedia called = %v, want %v", called, tt.wantCalled)
			}
			if !called {
				return
			}
			if got.VideoID != id {
				t.Errorf("VideoID = %v, want %v", got.VideoID, id)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", got.Status, tt.wantStatus)
			}
			if got.EncodedLocation != tt.wantFolder {
				t.Errorf("EncodedLocation = %q, want %q", got.EncodedLocation, tt.wantFolder)
			}
		})
	}
}
