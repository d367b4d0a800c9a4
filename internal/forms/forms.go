// Package forms decodes HTML form posts and query strings into inspection
// types. Nested fields use dotted paths, e.g. "brood.eggs=many" or
// "treatment.varroa_treatment.kind=other".
package forms

import (
	stderrors "errors"
	"net/url"
	"reflect"
	"slices"
	"strconv"

	"github.com/gorilla/schema"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.RegisterConverter(models.Date{}, convertDate)
	return d
}

// convertDate returns an invalid Value for unparsable input, which schema
// reports as a ConversionError.
func convertDate(value string) reflect.Value {
	d, err := models.ParseDate(value)
	if err != nil {
		return reflect.Value{}
	}
	return reflect.ValueOf(d)
}

// DecodeInspection builds an inspection from form values. Values that do not
// convert to the field's Go type yield a MalformedInput error; all other
// checks are those of models.NewInspection.
func DecodeInspection(values url.Values) (models.Inspection, error) {
	var fields models.InspectionFields
	if err := decode(&fields, values); err != nil {
		return models.Inspection{}, err
	}
	return models.NewInspection(fields)
}

// DecodeFilters reads the "from" and "to" bounds of an inspection listing.
// The hive id comes from the route, not the query.
func DecodeFilters(hiveID string, values url.Values) (models.InspectionFilters, error) {
	var filters models.InspectionFilters
	if err := decode(&filters, values); err != nil {
		return models.InspectionFilters{}, err
	}
	filters.HiveID = hiveID
	return filters, nil
}

// Pagination reads "offset" and "limit". Missing or unparsable values are 0
// and left for the service to default.
func Pagination(values url.Values) (offset, limit int) {
	offset, _ = strconv.Atoi(values.Get("offset"))
	limit, _ = strconv.Atoi(values.Get("limit"))
	return offset, limit
}

func decode(dst interface{}, values url.Values) error {
	err := decoder.Decode(dst, values)
	if err == nil {
		return nil
	}

	var multi schema.MultiError
	if stderrors.As(err, &multi) {
		keys := make([]string, 0, len(multi))
		for key := range multi {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		return errors.NewMalformedInputError("form values do not convert", err).WithDetails(map[string]any{
			"fields": keys,
		})
	}
	return errors.NewMalformedInputError("form values do not decode", err)
}
