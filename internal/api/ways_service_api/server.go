package ways_service_api

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/Domenick1991/airlines/internal/api/apierr"
	"github.com/Domenick1991/airlines/internal/api/views"
	"github.com/Domenick1991/airlines/internal/domain"
	"github.com/Domenick1991/airlines/internal/service/ways"
	"google.golang.org/protobuf/types/known/structpb"
)

// Server implements WaysServiceServer on top of the transfer finder.
type Server struct {
	finder ways.WaysUseCase
}

func NewServer(finder ways.WaysUseCase) *Server {
	return &Server{finder: finder}
}

func (s *Server) FindWays(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	q, err := queryFromStruct(req)
	if err != nil {
		return nil, apierr.Status(err)
	}

	res, err := s.finder.FindWays(ctx, q)
	if err != nil {
		return nil, apierr.Status(err)
	}

	out, err := toStruct(map[string]interface{}{"result": views.WaysResult(res)})
	if err != nil {
		return nil, apierr.Status(err)
	}
	return out, nil
}

func queryFromStruct(req *structpb.Struct) (ways.Query, error) {
	fields := req.GetFields()

	source, err := airportID(fields, "airport1")
	if err != nil {
		return ways.Query{}, err
	}
	destination, err := airportID(fields, "airport2")
	if err != nil {
		return ways.Query{}, err
	}

	return ways.Query{
		Source:      source,
		Destination: destination,
		Date:        fields["date"].GetStringValue(),
	}, nil
}

// airportID accepts the id as a number or a numeric string; a missing field is 0.
func airportID(fields map[string]*structpb.Value, name string) (int64, error) {
	v, ok := fields[name]
	if !ok {
		return 0, nil
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if n != math.Trunc(n) || n < 0 {
			return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidRequest, name)
		}
		return int64(n), nil
	case *structpb.Value_StringValue:
		if kind.StringValue == "" {
			return 0, nil
		}
		id, err := strconv.ParseInt(kind.StringValue, 10, 64)
		if err != nil || id < 0 {
			return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidRequest, name)
		}
		return id, nil
	case *structpb.Value_NullValue:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidRequest, name)
	}
}

// toStruct round-trips v through JSON so the struct mirrors the HTTP body.
func toStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

var _ WaysServiceServer = (*Server)(nil)
