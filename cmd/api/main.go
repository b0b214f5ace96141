package main

import (
	_ "gateway_reservas/docs"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Reservation Gateway API
// @version         1.0
// @description     Unit-reservation synchronization gateway in front of the ERP. The ERP is the only source of truth for unit sale status.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	Execute()
}
