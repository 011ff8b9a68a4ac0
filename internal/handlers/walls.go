package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"planner/internal/editor"
	"planner/internal/geometry"
	"planner/internal/models"
	"planner/internal/placement"
	"planner/internal/topology"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Wall Handler
// ============================================================

// WallHandler exposes the engine over HTTP. Every request carries its own
// wall snapshot; nothing is stored between requests.
type WallHandler struct {
	tol       geometry.Tolerance
	validator *placement.Validator
	editor    *editor.Editor
}

func NewWallHandler(tol geometry.Tolerance, validator *placement.Validator, ed *editor.Editor) *WallHandler {
	return &WallHandler{
		tol:       tol,
		validator: validator,
		editor:    ed,
	}
}

// Register mounts the wall routes on r.
func (h *WallHandler) Register(r fiber.Router) {
	r.Post("/intersections", h.Intersections)
	r.Post("/joints", h.Joints)
	r.Post("/snap-points", h.SnapPoints)
	r.Post("/snap", h.Snap)
	r.Post("/nearby", h.Nearby)
	r.Post("/validate", h.Validate)
	r.Post("/constraints", h.Constraints)
	r.Post("/connection", h.Connection)
	r.Post("/walls/split", h.Split)
	r.Post("/walls/merge", h.Merge)
	r.Post("/walls/join", h.Join)
	r.Post("/topology", h.Topology)
	r.Post("/openings", h.Openings)
}

var errEmptyBody = errors.New("empty body")

func decode(c fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return errEmptyBody
	}
	return json.Unmarshal(c.Body(), v)
}

func badRequest(c fiber.Ctx, err error) error {
	msg := "invalid json"
	if errors.Is(err, errEmptyBody) {
		msg = err.Error()
	}
	log.Printf("[WALLS] %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(http.StatusBadRequest).JSON(models.ErrorResponse{Error: msg})
}

func infeasible(c fiber.Ctx, err error) error {
	log.Printf("[WALLS] %s %s rejected: %v", c.Method(), c.Path(), err)
	return c.Status(http.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: err.Error()})
}

// ============================================================
// Queries
// ============================================================

func (h *WallHandler) Intersections(c fiber.Ctx) error {
	var req models.WallsRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(models.IntersectionsResponse{Intersections: geometry.FindAll(req.Walls, h.tol)})
}

func (h *WallHandler) Joints(c fiber.Ctx) error {
	var req models.WallsRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(models.JointsResponse{Joints: geometry.Joints(req.Walls, h.tol)})
}

func (h *WallHandler) SnapPoints(c fiber.Ctx) error {
	var req models.SnapPointsRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(models.PointsResponse{Points: geometry.SnapPoints(req.Walls, req.IncludeMidpoints, h.tol)})
}

// Snap attracts a cursor to the nearest snap point. A non-positive radius
// means the configured snap tolerance.
func (h *WallHandler) Snap(c fiber.Ctx) error {
	var req models.SnapRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	radius := req.Radius
	if radius <= 0 {
		radius = h.validator.Rules().SnapTolerance
	}

	points := geometry.SnapPoints(req.Walls, req.IncludeMidpoints, h.tol)
	p, ok := geometry.Snap(req.Point, points, radius)
	if !ok {
		return c.JSON(models.SnapResponse{Snapped: false, Point: req.Point})
	}
	return c.JSON(models.SnapResponse{Snapped: true, Point: p})
}

func (h *WallHandler) Nearby(c fiber.Ctx) error {
	var req models.NearbyRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	if req.Radius < 0 {
		return c.Status(http.StatusBadRequest).JSON(models.ErrorResponse{Error: "radius must not be negative"})
	}
	return c.JSON(models.WallsResponse{Walls: h.validator.FindNearby(req.Point, req.Walls, req.Radius)})
}

func (h *WallHandler) Validate(c fiber.Ctx) error {
	var req models.ValidateRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(h.validator.ValidatePlacement(req.Candidate, req.Walls))
}

func (h *WallHandler) Constraints(c fiber.Ctx) error {
	var req models.WallsRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	return c.JSON(h.validator.Constraints(req.Walls))
}

func (h *WallHandler) Connection(c fiber.Ctx) error {
	var req models.PairRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	ok, p := h.validator.ValidateConnection(req.A, req.B)
	return c.JSON(models.ConnectionResponse{Connected: ok, Point: p})
}

// ============================================================
// Edits
// ============================================================

func (h *WallHandler) Split(c fiber.Ctx) error {
	var req models.SplitRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	first, second, err := h.editor.SplitAt(req.Wall, req.Point)
	if err != nil {
		return infeasible(c, err)
	}
	return c.JSON(models.SplitResponse{Success: true, Walls: []geometry.Wall{first, second}})
}

func (h *WallHandler) Merge(c fiber.Ctx) error {
	var req models.PairRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	merged, err := h.editor.Merge(req.A, req.B)
	if err != nil {
		return infeasible(c, err)
	}
	return c.JSON(models.MergeResponse{Success: true, Wall: merged})
}

func (h *WallHandler) Join(c fiber.Ctx) error {
	var req models.JoinRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}

	var (
		res editor.JoinResult
		err error
	)
	if req.At != nil {
		res, err = h.editor.Join(req.A, req.B, *req.At)
	} else {
		res, err = h.editor.JoinAtIntersection(req.A, req.B)
	}
	if err != nil {
		return infeasible(c, err)
	}
	return c.JSON(models.JoinResponse{
		Success:  true,
		Walls:    []geometry.Wall{res.A, res.B},
		Warnings: res.Warnings,
	})
}

// ============================================================
// Topology
// ============================================================

func (h *WallHandler) Topology(c fiber.Ctx) error {
	var req models.WallsRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	g := topology.Build(req.Walls, h.tol)
	rooms := g.Rooms()
	log.Printf("[WALLS] Topology: %d walls -> %d vertices, %d edges, %d rooms", len(req.Walls), len(g.Vertices), len(g.Edges), len(rooms))
	return c.JSON(models.TopologyResponse{
		Vertices: g.Vertices,
		Edges:    g.Edges,
		Rooms:    rooms,
	})
}

func (h *WallHandler) Openings(c fiber.Ctx) error {
	var req models.OpeningRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	o, err := topology.PlaceOpening(req.Walls, req.Kind, req.Point, req.Width, h.tol)
	if err != nil {
		if errors.Is(err, topology.ErrUnknownOpeningKind) {
			return c.Status(http.StatusBadRequest).JSON(models.ErrorResponse{Error: err.Error()})
		}
		return infeasible(c, err)
	}
	return c.JSON(models.OpeningResponse{Success: true, Opening: o})
}
