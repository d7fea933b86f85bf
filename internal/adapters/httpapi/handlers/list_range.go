package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"

	"tinyfox/internal/adapters/httpapi/problems"
)

// parseRangeFromRequest reads the window from the range query param,
// falling back to the Range header. The query form ["start","end"] is
// inclusive on both ends, as react-admin sends it.
func parseRangeFromRequest(c *gin.Context) (Range, bool, error) {
	raw := strings.TrimSpace(c.Query("range"))
	if raw == "" {
		raw = strings.TrimSpace(c.GetHeader("Range"))
		if raw == "" {
			return Range{}, false, nil
		}

		rng, err := ParseRangeParam(raw)
		if err != nil {
			return Range{}, false, err
		}

		return rng, true, nil
	}

	if strings.HasPrefix(raw, "[") {
		rng, err := parseStartEndQuery(raw)
		if err != nil {
			return Range{}, false, err
		}

		return rng, true, nil
	}

	rng, err := ParseRangeParam(raw)
	if err != nil {
		return Range{}, false, err
	}

	return rng, true, nil
}

func parseStartEndQuery(raw string) (Range, error) {
	var values []int64
	if err := json.Unmarshal([]byte(raw), &values); err != nil || len(values) != 2 {
		return Range{}, errInvalidRange
	}

	start := values[0]
	end := values[1]

	if start < 0 || end < start {
		return Range{}, errInvalidRange
	}

	// end-start cannot overflow here; end-start+1 can.
	if end-start >= maxRangeLimit {
		return Range{}, errInvalidRange
	}

	return Range{Start: int(start), Count: int(end - start + 1)}, nil
}

func writeInvalidRange(c *gin.Context) {
	problems.WriteProblem(c, validationProblem(problems.DetailInvalidRange))
}

func writeInvalidSort(c *gin.Context) {
	problems.WriteProblem(c, validationProblem(problems.DetailInvalidSort))
}
