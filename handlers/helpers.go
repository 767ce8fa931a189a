package handlers

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	application "github.com/Warsame-Adam/skystream-api/service"

	"github.com/Warsame-Adam/skystream-api/errors"
)

const dateLayout = "2006-01-02"

func jsonResponse(object interface{}, writer http.ResponseWriter) {
	resp, err := json.Marshal(object)
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	writer.Write(resp)
}

func ExtractTraceInfoMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// handleServiceError maps a service failure onto the response status.
// Anything unclassified stays a 500 with the generic message, callers never
// see store internals.
func handleServiceError(writer http.ResponseWriter, span trace.Span, err error) {
	span.SetStatus(codes.Error, err.Error())

	if validation, ok := err.(*application.ValidationError); ok {
		http.Error(writer, validation.Message, http.StatusBadRequest)
		return
	}
	if err == mongo.ErrNoDocuments {
		http.Error(writer, errors.NotFoundError, http.StatusNotFound)
		return
	}
	if stderrors.Is(err, application.ErrInUse) {
		http.Error(writer, errors.InUseError, http.StatusForbidden)
		return
	}
	http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
}

// decodePatch merges a JSON patch document into the stored struct. The
// JSON values for timestamps and references arrive as strings, the hooks
// convert them so a partial update of a schedule or a reference field does
// not bounce.
func decodePatch(patch map[string]interface{}, target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			stringToObjectIDHook,
		),
		Result: target,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(patch)
}

func stringToObjectIDHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(primitive.ObjectID{}) {
		return data, nil
	}
	return primitive.ObjectIDFromHex(data.(string))
}

// parseBoolParam accepts only "true"/"1" and "false"/"0". Anything else is
// the caller's mistake, never silently treated as false.
func parseBoolParam(name, value string) (*bool, error) {
	switch value {
	case "":
		return nil, nil
	case "true", "1":
		b := true
		return &b, nil
	case "false", "0":
		b := false
		return &b, nil
	default:
		return nil, fmt.Errorf("parameter %s must be a boolean, got %q", name, value)
	}
}

func parseIntParam(name, value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("parameter %s must be a number, got %q", name, value)
	}
	return &n, nil
}

func parseFloatParam(name, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %s must be a number, got %q", name, value)
	}
	return &f, nil
}

func parseDateParam(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("parameter %s must be a date (%s), got %q", name, dateLayout, value)
	}
	return &t, nil
}

func parseListParam(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			list = append(list, part)
		}
	}
	return list
}
