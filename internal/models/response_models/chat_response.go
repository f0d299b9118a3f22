package response_models

import "tobugo/internal/planner"

type ChatTurnResponse struct {
	SessionID   string                     `json:"session_id"`
	Reply       string                     `json:"reply"`
	Preferences *planner.TravelPreferences `json:"preferences,omitempty"`
	Ready       bool                       `json:"ready_to_generate"`
	Status      string                     `json:"status"`
	Messages    []planner.ConversationTurn `json:"messages,omitempty"`
}
