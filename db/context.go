package db

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

const permitStoreKey = "permitportal.db"

// SetDBtoContext hands the permit store connection to every handler in the group.
func SetDBtoContext(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(permitStoreKey, database)
		c.Next()
	}
}

// DBInstance returns the connection set by SetDBtoContext. ok is false when the
// middleware did not run or stored a nil connection.
func DBInstance(c *gin.Context) (database *gorm.DB, ok bool) {
	v, exists := c.Get(permitStoreKey)
	if !exists {
		return nil, false
	}
	database, _ = v.(*gorm.DB)
	return database, database != nil
}
