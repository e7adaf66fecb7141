// Package charts provisions hosted table charts for canonical table content
// and remembers which chart belongs to which content.
//
// A Provisioner consults a per-document mapping (canonical key to chart id)
// before touching the network, so unchanged tables never create a second
// chart. Mappings are persisted through a Store; FileStore keeps them in a
// JSON side file next to the post.
//
// The charting service is reached through the Client interface.
// DatawrapperClient implements it for the Datawrapper v3 API.
package charts
