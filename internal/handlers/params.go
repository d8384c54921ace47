package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/coldtech-agenda/internal/agenda"
)

var errInvalidParam = errors.New("invalid parameter")

// pathID reads the optional :id segment. A missing segment is 0.
func pathID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidParam
	}
	return uint(id), nil
}

// queryIndex reads the optional ?index= position in the local list.
func queryIndex(c *gin.Context) (int, error) {
	raw, ok := c.GetQuery("index")
	if !ok || raw == "" {
		return agenda.NoIndex, nil
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return agenda.NoIndex, errInvalidParam
	}
	return idx, nil
}
