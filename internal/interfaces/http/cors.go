package http

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const regexPrefix = "regex:"

// CORS permite los orígenes exactos de la lista y los que coincidan con las entradas
// "regex:<patrón>", con credenciales. Un patrón inválido se ignora.
func CORS(origins []string) fiber.Handler {
	var exact []string
	var patterns []*regexp.Regexp
	for _, o := range origins {
		o = strings.TrimSpace(o)
		switch {
		case o == "":
		case strings.HasPrefix(o, regexPrefix):
			if re, err := regexp.Compile(strings.TrimPrefix(o, regexPrefix)); err == nil {
				patterns = append(patterns, re)
			}
		default:
			exact = append(exact, strings.TrimSuffix(o, "/"))
		}
	}
	if len(exact) == 0 {
		// AllowCredentials exige una lista explícita distinta de "*".
		exact = []string{"http://localhost:3000"}
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(exact, ","),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowOriginsFunc: func(origin string) bool {
			for _, re := range patterns {
				if re.MatchString(origin) {
					return true
				}
			}
			return false
		},
	})
}
