// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package nlp

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all NLP routes with the router.
//
// Description:
//
//	Registers the /api/nlp/* endpoints with the given Gin router group.
//	The router group should already have any required middleware applied.
//
// Inputs:
//
//	rg - Gin router group (typically /api)
//	handlers - The handlers instance
//
// Endpoints:
//
//	POST /api/nlp/classify - Full task triage (category, priority, keywords, due date, suggestions)
//	POST /api/nlp/breakdown - Subtask decomposition
//	POST /api/nlp/extract-keywords - Keyword frequency extraction
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	group := rg.Group("/nlp")
	{
		group.POST("/classify", handlers.HandleClassify)
		group.POST("/breakdown", handlers.HandleBreakdown)
		group.POST("/extract-keywords", handlers.HandleExtractKeywords)
	}
}
