package handler

import "time"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MemberRequest struct {
	Name         string `json:"name"`
	Nickname     string `json:"nickname"`
	Abbreviation string `json:"abbreviation"`
}

type TeamRequest struct {
	Name    string          `json:"name"`
	Members []MemberRequest `json:"members"`
}

type MemberResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Nickname     string `json:"nickname,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

type TeamResponse struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Members   []MemberResponse `json:"members"`
	CreatedAt string           `json:"created_at"`
}

type ChoreoRequest struct {
	Name    string `json:"name"`
	Counts  int    `json:"counts"`
	MatType string `json:"mat_type"`
	TeamID  int    `json:"team_id"`
}

type ChoreoResponse struct {
	ID           int                   `json:"id"`
	Name         string                `json:"name"`
	Counts       int                   `json:"counts"`
	MatType      string                `json:"mat_type"`
	TeamID       int                   `json:"team_id"`
	Lineups      []LineupResponse      `json:"lineups"`
	Participants []ParticipantResponse `json:"participants"`
	CreatedAt    string                `json:"created_at"`
}

type PositionRequest struct {
	MemberID int     `json:"member_id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type LineupRequest struct {
	StartCount int               `json:"start_count"`
	EndCount   int               `json:"end_count"`
	Positions  []PositionRequest `json:"positions"`
}

type PositionResponse struct {
	ID                 int     `json:"id"`
	LineupID           int     `json:"lineup_id"`
	MemberID           int     `json:"member_id"`
	X                  float64 `json:"x"`
	Y                  float64 `json:"y"`
	TimeOfManualUpdate *string `json:"time_of_manual_update,omitempty"`
}

type LineupResponse struct {
	ID         int                `json:"id"`
	ChoreoID   int                `json:"choreo_id"`
	StartCount int                `json:"start_count"`
	EndCount   int                `json:"end_count"`
	Positions  []PositionResponse `json:"positions"`
}

type PositionUpdateRequest struct {
	X                  *float64   `json:"x"`
	Y                  *float64   `json:"y"`
	TimeOfManualUpdate *time.Time `json:"time_of_manual_update"`
}

type PlacementResponse struct {
	MemberID int             `json:"member_id"`
	Member   *MemberResponse `json:"member"`
	X        float64         `json:"x"`
	Y        float64         `json:"y"`
}

type PositionsResponse struct {
	Count     *int                `json:"count,omitempty"`
	Positions []PlacementResponse `json:"positions"`
}

type FrameResponse struct {
	Count     int                 `json:"count"`
	Positions []PlacementResponse `json:"positions"`
}

type FramesResponse struct {
	Frames []FrameResponse `json:"frames"`
}

type GridRowResponse struct {
	Bar    int   `json:"bar"`
	Counts []int `json:"counts"`
}

type CountSheetResponse struct {
	BeatsPerBar int               `json:"beats_per_bar"`
	Rows        []GridRowResponse `json:"rows"`
}

type GridCellResponse struct {
	Count     int `json:"count"`
	Bar       int `json:"bar"`
	BeatInBar int `json:"beat_in_bar"`
}

type ParticipantRequest struct {
	MemberID int    `json:"member_id"`
	Color    string `json:"color"`
}

type ParticipantResponse struct {
	ChoreoID int    `json:"choreo_id"`
	MemberID int    `json:"member_id"`
	Color    string `json:"color"`
}
