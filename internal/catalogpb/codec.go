package catalogpb

import (
	"strconv"
	"strings"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
	"google.golang.org/protobuf/types/known/structpb"
)

// PageRequest selects one page of a collection. An empty After requests the first page.
type PageRequest struct {
	After string
	First int
}

func EncodePageRequest(r PageRequest) *structpb.Struct {
	f := map[string]*structpb.Value{
		"first": structpb.NewNumberValue(float64(r.First)),
	}
	if r.After != "" {
		f["after"] = structpb.NewStringValue(r.After)
	}
	return &structpb.Struct{Fields: f}
}

func DecodePageRequest(s *structpb.Struct) PageRequest {
	return PageRequest{After: rawString(s, "after"), First: int(number(s, "first"))}
}

func EncodeID(id string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{"id": structpb.NewStringValue(id)}}
}

func DecodeID(s *structpb.Struct) string {
	return rawString(s, "id")
}

func EncodeStatus(status string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{"status": structpb.NewStringValue(status)}}
}

func DecodeStatus(s *structpb.Struct) string {
	return rawString(s, "status")
}

// EncodePage writes items, endCursor (omitted when empty) and hasNextPage.
func EncodePage[T any](p models.Page[T], enc func(T) *structpb.Struct) *structpb.Struct {
	items := make([]*structpb.Value, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, structpb.NewStructValue(enc(it)))
	}
	f := map[string]*structpb.Value{
		"items":       structpb.NewListValue(&structpb.ListValue{Values: items}),
		"hasNextPage": structpb.NewBoolValue(p.HasMore),
	}
	if p.NextCursor != "" {
		f["endCursor"] = structpb.NewStringValue(p.NextCursor)
	}
	return &structpb.Struct{Fields: f}
}

// DecodePage reads a page; list entries that are not objects are skipped.
func DecodePage[T any](s *structpb.Struct, dec func(*structpb.Struct) T) models.Page[T] {
	page := models.EmptyPage[T]()
	for _, v := range s.GetFields()["items"].GetListValue().GetValues() {
		obj := v.GetStructValue()
		if obj == nil {
			continue
		}
		page.Items = append(page.Items, dec(obj))
	}
	page.NextCursor = rawString(s, "endCursor")
	page.HasMore = s.GetFields()["hasNextPage"].GetBoolValue()
	return page
}

func EncodeCharacter(c models.Character) *structpb.Struct {
	f := map[string]*structpb.Value{
		"id":         structpb.NewStringValue(c.ID),
		"name":       structpb.NewStringValue(c.Name),
		"filmsCount": structpb.NewNumberValue(float64(c.FilmsCount)),
		"birthYear":  structpb.NewStringValue(c.BirthYear),
		"eyeColor":   structpb.NewStringValue(c.EyeColor),
		"gender":     structpb.NewStringValue(c.Gender),
		"hairColor":  structpb.NewStringValue(c.HairColor),
		"height":     structpb.NewNumberValue(float64(c.Height)),
		"mass":       structpb.NewNumberValue(c.Mass),
		"skinColor":  structpb.NewStringValue(c.SkinColor),
	}
	if c.Homeworld != nil {
		f["homeworld"] = structpb.NewStringValue(*c.Homeworld)
	}
	return &structpb.Struct{Fields: f}
}

// DecodeCharacter never sets IsFavorite; the remote side has no favorites.
func DecodeCharacter(s *structpb.Struct) models.Character {
	c := models.Character{
		ID:         rawString(s, "id"),
		Name:       text(s, "name"),
		FilmsCount: int(number(s, "filmsCount")),
		BirthYear:  text(s, "birthYear"),
		EyeColor:   text(s, "eyeColor"),
		Gender:     text(s, "gender"),
		HairColor:  text(s, "hairColor"),
		Height:     int(number(s, "height")),
		Mass:       number(s, "mass"),
		SkinColor:  text(s, "skinColor"),
	}
	if v, ok := s.GetFields()["homeworld"]; ok {
		if hw, ok := v.GetKind().(*structpb.Value_StringValue); ok {
			name := hw.StringValue
			c.Homeworld = &name
		}
	}
	return c
}

func EncodeStarship(v models.Starship) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":                   structpb.NewStringValue(v.ID),
		"name":                 structpb.NewStringValue(v.Name),
		"model":                structpb.NewStringValue(v.Model),
		"starshipClass":        structpb.NewStringValue(v.StarshipClass),
		"manufacturers":        stringList(v.Manufacturers),
		"length":               structpb.NewNumberValue(v.Length),
		"crew":                 structpb.NewStringValue(v.Crew),
		"passengers":           structpb.NewStringValue(v.Passengers),
		"maxAtmospheringSpeed": structpb.NewNumberValue(float64(v.MaxAtmospheringSpeed)),
		"hyperdriveRating":     structpb.NewNumberValue(v.HyperdriveRating),
	}}
}

func DecodeStarship(s *structpb.Struct) models.Starship {
	return models.Starship{
		ID:                   rawString(s, "id"),
		Name:                 text(s, "name"),
		Model:                text(s, "model"),
		StarshipClass:        text(s, "starshipClass"),
		Manufacturers:        list(s, "manufacturers"),
		Length:               number(s, "length"),
		Crew:                 text(s, "crew"),
		Passengers:           text(s, "passengers"),
		MaxAtmospheringSpeed: int(number(s, "maxAtmospheringSpeed")),
		HyperdriveRating:     number(s, "hyperdriveRating"),
	}
}

func EncodePlanet(p models.Planet) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":             structpb.NewStringValue(p.ID),
		"name":           structpb.NewStringValue(p.Name),
		"climates":       stringList(p.Climates),
		"diameter":       structpb.NewNumberValue(float64(p.Diameter)),
		"rotationPeriod": structpb.NewNumberValue(float64(p.RotationPeriod)),
		"orbitalPeriod":  structpb.NewNumberValue(float64(p.OrbitalPeriod)),
		"gravity":        structpb.NewStringValue(p.Gravity),
		"population":     structpb.NewNumberValue(p.Population),
		"terrains":       stringList(p.Terrains),
		"surfaceWater":   structpb.NewNumberValue(p.SurfaceWater),
	}}
}

func DecodePlanet(s *structpb.Struct) models.Planet {
	return models.Planet{
		ID:             rawString(s, "id"),
		Name:           text(s, "name"),
		Climates:       list(s, "climates"),
		Diameter:       int(number(s, "diameter")),
		RotationPeriod: int(number(s, "rotationPeriod")),
		OrbitalPeriod:  int(number(s, "orbitalPeriod")),
		Gravity:        text(s, "gravity"),
		Population:     number(s, "population"),
		Terrains:       list(s, "terrains"),
		SurfaceWater:   number(s, "surfaceWater"),
	}
}

func rawString(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

func text(s *structpb.Struct, key string) string {
	return models.StringOr(rawString(s, key))
}

// number accepts numeric values and numeric strings such as "1,000".
func number(s *structpb.Struct, key string) float64 {
	v := s.GetFields()[key]
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return k.NumberValue
	case *structpb.Value_StringValue:
		f, err := strconv.ParseFloat(strings.ReplaceAll(k.StringValue, ",", ""), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func list(s *structpb.Struct, key string) []string {
	out := []string{}
	for _, v := range s.GetFields()[key].GetListValue().GetValues() {
		if str, ok := v.GetKind().(*structpb.Value_StringValue); ok {
			out = append(out, str.StringValue)
		}
	}
	return out
}

func stringList(items []string) *structpb.Value {
	values := make([]*structpb.Value, 0, len(items))
	for _, it := range items {
		values = append(values, structpb.NewStringValue(it))
	}
	return structpb.NewListValue(&structpb.ListValue{Values: values})
}
