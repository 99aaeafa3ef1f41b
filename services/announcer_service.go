package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	pollytypes "github.com/aws/aws-sdk-go-v2/service/polly/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AnnouncementClip is a synthesized announcer line: where the audio
// lives and a short-lived URL the rink tablet can play directly.
type AnnouncementClip struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	Voice     string `json:"voice"`
	ExpiresAt string `json:"expiresAt"`
}

const clipURLTTL = 5 * time.Minute

// AnnouncerService turns event text into playable audio: Polly
// synthesizes an MP3, the clip lands in S3, and the caller gets a
// presigned read URL.
type AnnouncerService struct {
	Polly     *polly.Client
	Presigner *s3.PresignClient
	S3        *s3.Client
	Bucket    string
	Voice     string
	Enabled   bool
}

// NewAnnouncerService builds the announcer against real AWS clients.
// When disabled, Synthesize short-circuits before touching either
// client, so a disabled service needs no credentials.
func NewAnnouncerService(ctx context.Context, region, bucket, voice string, enabled bool) (*AnnouncerService, error) {
	svc := &AnnouncerService{Bucket: bucket, Voice: voice, Enabled: enabled}
	if !enabled {
		return svc, nil
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	svc.Polly = polly.NewFromConfig(cfg)
	svc.S3 = s3.NewFromConfig(cfg)
	svc.Presigner = s3.NewPresignClient(svc.S3)
	return svc, nil
}

// Synthesize renders text to speech and returns a playable clip.
func (s *AnnouncerService) Synthesize(ctx context.Context, text, voice string) (*AnnouncementClip, error) {
	if !s.Enabled {
		return nil, ErrAnnouncerDisabled
	}
	if voice == "" {
		voice = s.Voice
	}

	speech, err := s.Polly.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		OutputFormat: pollytypes.OutputFormatMp3,
		Text:         aws.String(text),
		VoiceId:      pollytypes.VoiceId(voice),
		Engine:       pollytypes.EngineNeural,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer speech.AudioStream.Close()

	key := "announcer/" + uuid.NewString() + ".mp3"
	_, err = s.S3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        speech.AudioStream,
		ContentType: aws.String("audio/mpeg"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store announcer clip: %w", err)
	}

	presigned, err := s.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(clipURLTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to presign announcer clip: %w", err)
	}

	log.Info().Str("key", key).Str("voice", voice).Msg("announcer clip synthesized")
	return &AnnouncementClip{
		Key:       key,
		URL:       presigned.URL,
		Voice:     voice,
		ExpiresAt: time.Now().UTC().Add(clipURLTTL).Format(time.RFC3339),
	}, nil
}
