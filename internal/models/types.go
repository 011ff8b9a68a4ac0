package models

import (
	"planner/internal/editor"
	"planner/internal/geometry"
	"planner/internal/topology"
)

// ============================================================
// Requests
// ============================================================

type WallsRequest struct {
	Walls []geometry.Wall `json:"walls"`
}

type SnapPointsRequest struct {
	Walls            []geometry.Wall `json:"walls"`
	IncludeMidpoints bool            `json:"includeMidpoints"`
}

type SnapRequest struct {
	Walls            []geometry.Wall `json:"walls"`
	Point            geometry.Point  `json:"point"`
	Radius           float64         `json:"radius"`
	IncludeMidpoints bool            `json:"includeMidpoints"`
}

type NearbyRequest struct {
	Walls  []geometry.Wall `json:"walls"`
	Point  geometry.Point  `json:"point"`
	Radius float64         `json:"radius"`
}

type ValidateRequest struct {
	Candidate geometry.Wall   `json:"candidate"`
	Walls     []geometry.Wall `json:"walls"`
}

type PairRequest struct {
	A geometry.Wall `json:"a"`
	B geometry.Wall `json:"b"`
}

type SplitRequest struct {
	Wall  geometry.Wall  `json:"wall"`
	Point geometry.Point `json:"point"`
}

// JoinRequest joins at At, or at the intersection of A and B when At is
// omitted.
type JoinRequest struct {
	A  geometry.Wall   `json:"a"`
	B  geometry.Wall   `json:"b"`
	At *geometry.Point `json:"at,omitempty"`
}

type OpeningRequest struct {
	Walls []geometry.Wall      `json:"walls"`
	Kind  geometry.OpeningKind `json:"kind"`
	Point geometry.Point       `json:"point"`
	Width float64              `json:"width"`
}

// ============================================================
// Responses
// ============================================================

type WallsResponse struct {
	Walls []geometry.Wall `json:"walls"`
}

type IntersectionsResponse struct {
	Intersections []geometry.Intersection `json:"intersections"`
}

type JointsResponse struct {
	Joints []geometry.Joint `json:"joints"`
}

type PointsResponse struct {
	Points []geometry.Point `json:"points"`
}

type SnapResponse struct {
	Snapped bool           `json:"snapped"`
	Point   geometry.Point `json:"point"`
}

type ConnectionResponse struct {
	Connected bool            `json:"connected"`
	Point     *geometry.Point `json:"point"`
}

type SplitResponse struct {
	Success bool            `json:"success"`
	Walls   []geometry.Wall `json:"walls"`
}

type MergeResponse struct {
	Success bool          `json:"success"`
	Wall    geometry.Wall `json:"wall"`
}

type JoinResponse struct {
	Success  bool             `json:"success"`
	Walls    []geometry.Wall  `json:"walls"`
	Warnings []editor.Warning `json:"warnings"`
}

type TopologyResponse struct {
	Vertices []topology.Vertex `json:"vertices"`
	Edges    []topology.Edge   `json:"edges"`
	Rooms    []topology.Room   `json:"rooms"`
}

type OpeningResponse struct {
	Success bool             `json:"success"`
	Opening geometry.Opening `json:"opening"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
