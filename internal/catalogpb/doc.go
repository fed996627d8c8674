// Package catalogpb is the wire contract of the Star Wars catalog service.
//
// Messages are google.protobuf.Struct values so that both sides can share the
// protobuf codec of grpc-go without generated stubs. Each method exchanges one
// Struct request for one Struct response:
//
//	AllCharacters, AllStarships, AllPlanets   {after?, first} -> {items, endCursor?, hasNextPage}
//	Character, Starship, Planet               {id}            -> entity, NOT_FOUND when absent
//	Ping                                      {}              -> {status: "OK"}
//
// Decoders are lenient: an absent text attribute becomes models.Unknown, an
// absent number becomes 0, an absent homeworld stays nil.
package catalogpb
