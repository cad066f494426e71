package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"discord_clerk/internal/domain/entities"
)

// LoadQuestions returns the per-position application questionnaires.
//
// When QUESTIONS_FILE points at a JSON file of the shape
// {"position": [{"id": "...", "prompt": "..."}, ...]} it is loaded from
// there; otherwise the built-in catalog below is used.
func LoadQuestions() (map[string][]entities.Question, error) {
	path := os.Getenv("QUESTIONS_FILE")
	if path == "" {
		return defaultQuestions(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions file %s: %w", path, err)
	}
	var questions map[string][]entities.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse questions file %s: %w", path, err)
	}
	log.Printf("[catalog] loaded questions file=%s positions=%d", path, len(questions))
	return questions, nil
}

func defaultQuestions() map[string][]entities.Question {
	return map[string][]entities.Question{
		"moderator": {
			{ID: "mod_q1", Prompt: "How old are you, and what timezone are you in?"},
			{ID: "mod_q2", Prompt: "Do you have prior moderation experience? Tell us where and for how long."},
			{ID: "mod_q3", Prompt: "A member is repeatedly breaking chat rules after a warning. Walk us through how you would handle it."},
			{ID: "mod_q4", Prompt: "How many hours per week can you dedicate to the server?"},
		},
		"designer": {
			{ID: "des_q1", Prompt: "Which design services can you deliver (liveries, avatars, ELS, other)?"},
			{ID: "des_q2", Prompt: "Link two or three examples of your previous work."},
			{ID: "des_q3", Prompt: "What software do you use, and how long have you worked with it?"},
			{ID: "des_q4", Prompt: "What is your typical turnaround time for a standard commission?"},
		},
		"support": {
			{ID: "sup_q1", Prompt: "Why do you want to join the support team?"},
			{ID: "sup_q2", Prompt: "Describe a time you helped someone resolve a frustrating problem."},
			{ID: "sup_q3", Prompt: "How many hours per week can you dedicate to support duties?"},
		},
	}
}
