package web

import (
	"bytes"
	"fmt"
	"net/http"

	"task-planner/internal/errors"

	"github.com/gin-gonic/gin"
)

func (s *Server) download(c *gin.Context) {
	var buf bytes.Buffer
	if _, err := s.services.ExportService.WriteCSV(c.Request.Context(), &buf); err != nil {
		message := ""
		if errors.IsNotFound(err) {
			message = s.labels.NoTasks
		}
		s.fail(c, "download.html", err, message)
		return
	}

	filename := s.services.ExportService.ExportFilename(s.now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
