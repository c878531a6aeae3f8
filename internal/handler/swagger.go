package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dafibh/fortuna/ledger-gateway/docs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/swaggo/swag"
)

const (
	swaggerRefPrefix  = "#/definitions/"
	openAPIRefPrefix  = "#/components/schemas/"
	jsonMediaType     = "application/json"
	openAPIVersion    = "3.0.3"
	defaultServerPath = "/api/v1"
)

// OpenAPI3Spec is the OpenAPI 3.0 rendering of the committed swagger doc
type OpenAPI3Spec struct {
	OpenAPI    string         `json:"openapi"`
	Info       map[string]any `json:"info"`
	Servers    []Server       `json:"servers"`
	Paths      map[string]any `json:"paths"`
	Components map[string]any `json:"components,omitempty"`
}

// Server represents an OpenAPI 3.0 server
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// OpenAPIHandler serves the API description
type OpenAPIHandler struct {
	servers []Server
}

// NewOpenAPIHandler creates an OpenAPIHandler. publicURL, when set, is listed
// ahead of the server the request reached.
func NewOpenAPIHandler(publicURL string) *OpenAPIHandler {
	h := &OpenAPIHandler{}
	if publicURL = strings.TrimRight(publicURL, "/"); publicURL != "" {
		h.servers = append(h.servers, Server{URL: publicURL + defaultServerPath, Description: "Public"})
	}
	return h
}

// ServeOpenAPI3Spec handles GET /api/v1/openapi.json
func (h *OpenAPIHandler) ServeOpenAPI3Spec(c echo.Context) error {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		log.Error().Err(err).Msg("Failed to read swagger doc")
		return NewInternalError(c, "Failed to read API description")
	}

	spec, err := convertSwagger2(doc)
	if err != nil {
		log.Error().Err(err).Msg("Failed to parse swagger doc")
		return NewInternalError(c, "Failed to parse API description")
	}

	req := c.Request()
	spec.Servers = append(append([]Server{}, h.servers...), Server{
		URL:         c.Scheme() + "://" + req.Host + defaultServerPath,
		Description: "This gateway",
	})
	return c.JSON(http.StatusOK, spec)
}

func convertSwagger2(doc string) (*OpenAPI3Spec, error) {
	var swagger2 map[string]any
	if err := json.Unmarshal([]byte(doc), &swagger2); err != nil {
		return nil, err
	}

	spec := &OpenAPI3Spec{
		OpenAPI:    openAPIVersion,
		Paths:      map[string]any{},
		Components: map[string]any{},
	}
	spec.Info, _ = swagger2["info"].(map[string]any)

	paths, _ := swagger2["paths"].(map[string]any)
	for path, item := range paths {
		methods, ok := item.(map[string]any)
		if !ok {
			continue
		}
		converted := make(map[string]any, len(methods))
		for method, op := range methods {
			if operation, ok := op.(map[string]any); ok {
				converted[method] = convertOperation(operation)
			}
		}
		spec.Paths[path] = converted
	}

	if secDefs, ok := swagger2["securityDefinitions"].(map[string]any); ok {
		spec.Components["securitySchemes"] = convertSecuritySchemes(secDefs)
	}
	if definitions, ok := swagger2["definitions"].(map[string]any); ok {
		spec.Components["schemas"] = rewriteRefs(definitions)
	}
	return spec, nil
}

// convertOperation moves body parameters into requestBody and wraps
// response schemas in a JSON media type.
func convertOperation(op map[string]any) map[string]any {
	result := make(map[string]any, len(op))
	for key, value := range op {
		switch key {
		case "consumes", "produces", "parameters", "responses":
		default:
			result[key] = rewriteRefs(value)
		}
	}

	rawParams, _ := op["parameters"].([]any)
	var params []any
	for _, raw := range rawParams {
		param, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if param["in"] == "body" {
			body := map[string]any{
				"content": map[string]any{
					jsonMediaType: map[string]any{"schema": rewriteRefs(param["schema"])},
				},
			}
			if required, ok := param["required"]; ok {
				body["required"] = required
			}
			if desc, ok := param["description"]; ok {
				body["description"] = desc
			}
			result["requestBody"] = body
			continue
		}
		params = append(params, convertParameter(param))
	}
	if len(params) > 0 {
		result["parameters"] = params
	}

	responses, _ := op["responses"].(map[string]any)
	converted := make(map[string]any, len(responses))
	for code, raw := range responses {
		resp, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		out := map[string]any{"description": resp["description"]}
		if schema, ok := resp["schema"]; ok {
			out["content"] = map[string]any{
				jsonMediaType: map[string]any{"schema": rewriteRefs(schema)},
			}
		}
		converted[code] = out
	}
	result["responses"] = converted
	return result
}

func convertParameter(param map[string]any) map[string]any {
	result := make(map[string]any)
	schema := make(map[string]any)
	for key, value := range param {
		switch key {
		case "name", "in", "description", "required":
			result[key] = value
		case "type", "format", "enum", "default", "minimum", "maximum":
			schema[key] = value
		case "items":
			schema[key] = rewriteRefs(value)
		}
	}
	if len(schema) > 0 {
		result["schema"] = schema
	}
	return result
}

// convertSecuritySchemes turns the apiKey bearer header into an http bearer scheme
func convertSecuritySchemes(secDefs map[string]any) map[string]any {
	result := make(map[string]any, len(secDefs))
	for name, raw := range secDefs {
		def, ok := raw.(map[string]any)
		if ok && def["type"] == "apiKey" && def["in"] == "header" && def["name"] == echo.HeaderAuthorization {
			result[name] = map[string]any{
				"type":        "http",
				"scheme":      "bearer",
				"description": def["description"],
			}
			continue
		}
		result[name] = raw
	}
	return result
}

func rewriteRefs(data any) any {
	switch v := data.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, value := range v {
			if ref, ok := value.(string); ok && key == "$ref" {
				result[key] = strings.Replace(ref, swaggerRefPrefix, openAPIRefPrefix, 1)
				continue
			}
			result[key] = rewriteRefs(value)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = rewriteRefs(item)
		}
		return result
	default:
		return data
	}
}
