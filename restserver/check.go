// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-conformance/conform"
	"github.com/diffeo/go-conformance/restdata"
	"github.com/mitchellh/mapstructure"
)

// decode is a helper that uses the mapstructure library to decode a
// loose JSON body into a typed structure.  Weak typing is enabled so
// that, for instance, the codec's int64 decoding of a JSON number
// still lands in an int32 field.
func decode(result interface{}, data map[string]interface{}) error {
	config := mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(&config)
	if err == nil {
		err = decoder.Decode(data)
	}
	return err
}

func (api *restAPI) MirrorFieldsPost(ctx *requestContext, in interface{}) (interface{}, error) {
	loose, valid := in.(map[string]interface{})
	if !valid {
		return nil, errUnmarshal
	}
	var payload conform.MirrorPayload
	if err := decode(&payload, loose); err != nil {
		return nil, restdata.ErrBadRequest{Err: err}
	}
	result := api.Service.MirrorFields(ctx.Context, conform.MirrorFieldsRequest{
		Payload: payload,
	})
	if result.Err != nil {
		return nil, result.Err
	}
	if result.Value == nil {
		return nil, contractViolation("MirrorFields")
	}
	return result.Value, nil
}

func (api *restAPI) CheckQueryGet(ctx *requestContext) (interface{}, error) {
	result := api.Service.CheckQuery(ctx.Context, conform.CheckRequest{
		Fields: ctx.QueryFields(),
	})
	if result.Err != nil {
		return nil, result.Err
	}
	if result.Value == nil {
		return nil, contractViolation("CheckQuery")
	}
	return result.Value, nil
}

func (api *restAPI) CheckPathGet(ctx *requestContext) (interface{}, error) {
	if ctx.PathFields == nil {
		// The route guarantees the segments; getting here
		// without them is a routing bug.
		return nil, contractViolation("CheckPath")
	}
	result := api.Service.CheckPath(ctx.Context, conform.CheckRequest{
		Fields: *ctx.PathFields,
	})
	if result.Err != nil {
		return nil, result.Err
	}
	if result.Value == nil {
		return nil, contractViolation("CheckPath")
	}
	return result.Value, nil
}
