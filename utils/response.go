package utils

import "github.com/gin-gonic/gin"

// JSONMessage writes the {"message": ...} body used by the mock API for every
// non-success answer.
func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

func JSONData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}
