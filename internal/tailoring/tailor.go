// Package tailoring selects and rewrites resume bullets for a job with a single model call.
package tailoring

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/sirupsen/logrus"
)

// Expected size of the tailored list. Replies outside the range are kept as-is.
const (
	MinBullets = 8
	MaxBullets = 12
)

const promptFile = "tailoring.json"

// Service turns candidate bullets into a tailored list using an llm.Client
type Service struct {
	client llm.Client
	logger *logrus.Entry
}

// NewService creates a Service. A nil logger uses the logrus standard logger.
func NewService(client llm.Client, logger *logrus.Entry) *Service {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{client: client, logger: logger}
}

// Tailor asks the model to pick and lightly rewrite the most relevant bullets.
// Exactly one completion call is made. The returned order is the model's.
func (s *Service) Tailor(ctx context.Context, jobDescription, jobTitle, companyName string, candidates []types.BulletEntry) ([]string, error) {
	if s.client == nil {
		return nil, &ServiceError{Message: "no completion client configured"}
	}

	systemPrompt, err := prompts.Get(promptFile, "select-and-rewrite-system")
	if err != nil {
		return nil, &ServiceError{Message: "failed to load prompt", Cause: err}
	}
	userPrompt, err := buildUserPrompt(jobDescription, jobTitle, companyName, candidates)
	if err != nil {
		return nil, &ServiceError{Message: "failed to load prompt", Cause: err}
	}

	log := s.logger.WithFields(logrus.Fields{
		"model":      s.client.Model(),
		"candidates": len(candidates),
	})
	log.Debug("requesting tailored bullets")

	start := time.Now()
	resp, err := s.client.Complete(ctx, llm.Request{
		System: systemPrompt,
		User:   userPrompt,
		JSON:   true,
	})
	if err != nil {
		return nil, &ServiceError{Message: "completion request failed", Cause: err}
	}

	fields := logrus.Fields{"duration": time.Since(start).Round(time.Millisecond)}
	if resp.Usage != nil {
		fields["tokens"] = resp.Usage.TotalTokens
	}
	log = log.WithFields(fields)

	bullets, err := parseBullets(resp.Text, log)
	if err != nil {
		return nil, err
	}

	if len(bullets) < MinBullets || len(bullets) > MaxBullets {
		log.WithField("bullets", len(bullets)).Warnf("model returned %d bullets, expected %d-%d", len(bullets), MinBullets, MaxBullets)
	} else {
		log.WithField("bullets", len(bullets)).Info("tailored bullets received")
	}
	return bullets, nil
}

// buildUserPrompt embeds the job and the candidate bullets, one "- " line each.
func buildUserPrompt(jobDescription, jobTitle, companyName string, candidates []types.BulletEntry) (string, error) {
	template, err := prompts.Get(promptFile, "select-and-rewrite-user")
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, text := range types.BulletTexts(candidates) {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(text)
	}

	return prompts.Format(template, map[string]string{
		"JobTitle":       jobTitle,
		"CompanyName":    companyName,
		"JobDescription": ingestion.NormalizeJobDescription(jobDescription),
		"Bullets":        sb.String(),
	}), nil
}

// parseBullets reads {"bullets": [...]} from an untrusted reply.
// Text that is not JSON is an error. Any other deviation yields an empty list.
func parseBullets(text string, log *logrus.Entry) ([]string, error) {
	cleaned := llm.CleanJSONBlock(text)

	var reply interface{}
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return nil, &ServiceError{Message: "model reply is not valid JSON", Cause: err}
	}

	object, ok := reply.(map[string]interface{})
	if !ok {
		log.Warn("model reply is not a JSON object, using no bullets")
		return []string{}, nil
	}

	raw, ok := object["bullets"]
	if !ok {
		log.Debug("model reply has no bullets key")
		return []string{}, nil
	}

	items, ok := raw.([]interface{})
	if !ok {
		log.Warnf("bullets is %T, not a list, using no bullets", raw)
		return []string{}, nil
	}

	bullets := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			log.Warnf("bullet %d is %T, not a string, using no bullets", i, item)
			return []string{}, nil
		}
		bullets = append(bullets, s)
	}
	return bullets, nil
}
