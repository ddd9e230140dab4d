package api

import (
	"github.com/jfalcomer/devblog-backend/database"
	"github.com/jfalcomer/devblog-backend/services"
)

// routeHandlers holds one handler per resource
type routeHandlers struct {
	blogHandler    blogHandler
	sectionHandler sectionHandler
	tagHandler     tagHandler
	contactHandler contactHandler
}

func initializeHandlers(db database.Database, storage services.Storage, notifier *services.ContactNotifier) *routeHandlers {
	return &routeHandlers{
		blogHandler:    newBlogHandler(db.BlogRepo(), db.BlogSectionRepo(), db.TagRepo(), storage),
		sectionHandler: newSectionHandler(db.SectionRepo(), storage),
		tagHandler:     newTagHandler(db.TagRepo()),
		contactHandler: newContactHandler(db.MessageRepo(), notifier),
	}
}
