package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// MaxBatchEdges bounds the size of a single incremental update batch.
	MaxBatchEdges = 1_000_000
	MinBatchEdges = 0
)

func init() {
	validate = validator.New()
}

// EdgeUpdateRequest is the wire shape of a single edge insertion or deletion
// as it would arrive from an external ingestion collaborator, before being
// converted into the core's (u, v) pairs.
type EdgeUpdateRequest struct {
	Source uint32  `json:"source"`
	Target uint32  `json:"target"`
	Weight float64 `json:"weight" validate:"gte=0"`
}

// BatchRequest is a full incremental update batch as it would be submitted
// to the driver: a symmetric set of insertions and deletions, sorted by
// source vertex id.
type BatchRequest struct {
	Insertions []EdgeUpdateRequest `json:"insertions" validate:"dive"`
	Deletions  []EdgeUpdateRequest `json:"deletions" validate:"dive"`
}

// ValidateEdgeUpdateRequest validates a single edge update.
func ValidateEdgeUpdateRequest(req *EdgeUpdateRequest) error {
	if req == nil {
		return errors.New("edge update request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	if req.Weight < 0 {
		return fmt.Errorf("Weight: negative edge weights are not supported, got %v", req.Weight)
	}
	return nil
}

// ValidateBatchRequest validates a full incremental batch: every edge must be
// individually valid, and the batch must respect size bounds and the
// symmetry invariant (each undirected update appears as both directions).
func ValidateBatchRequest(req *BatchRequest) error {
	if req == nil {
		return errors.New("batch request cannot be nil")
	}
	if err := ValidateBatchSize(len(req.Insertions) + len(req.Deletions)); err != nil {
		return err
	}
	for i := range req.Insertions {
		if err := ValidateEdgeUpdateRequest(&req.Insertions[i]); err != nil {
			return fmt.Errorf("Insertions[%d]: %w", i, err)
		}
	}
	for i := range req.Deletions {
		if err := ValidateEdgeUpdateRequest(&req.Deletions[i]); err != nil {
			return fmt.Errorf("Deletions[%d]: %w", i, err)
		}
	}
	if !isSymmetric(req.Insertions) {
		return errors.New("Insertions: batch must be symmetric, each (u,v) requires a matching (v,u)")
	}
	if !isSymmetric(req.Deletions) {
		return errors.New("Deletions: batch must be symmetric, each (u,v) requires a matching (v,u)")
	}
	return nil
}

func isSymmetric(edges []EdgeUpdateRequest) bool {
	seen := make(map[[2]uint32]bool, len(edges))
	for _, e := range edges {
		seen[[2]uint32{e.Source, e.Target}] = true
	}
	for pair := range seen {
		reverse := [2]uint32{pair[1], pair[0]}
		if !seen[reverse] {
			return false
		}
	}
	return true
}

// ValidateBatchSize validates the size of an incremental update batch.
func ValidateBatchSize(size int) error {
	if size < MinBatchEdges {
		return fmt.Errorf("batch size must be at least %d, got %d", MinBatchEdges, size)
	}
	if size > MaxBatchEdges {
		return fmt.Errorf("batch size must not exceed %d, got %d", MaxBatchEdges, size)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
