package url

import "fmt"

// Origin is a tuple origin, https://url.spec.whatwg.org/#concept-origin.
// A zero-value Origin with Opaque set to true represents an opaque
// origin (https://url.spec.whatwg.org/#concept-origin-opaque).
type Origin struct {
	Opaque bool

	Scheme string
	Host   Host
	Port   *uint16
	Domain string
}

// Origin implements https://url.spec.whatwg.org/#concept-url-origin
// for the subset of schemes kauri's URL parser supports directly. A
// blob URL gets the origin of the URL its opaque path parses to, or an
// opaque origin if that path does not parse.
func (u *URL) Origin() Origin {
	switch u.Scheme {
	case "blob":
		inner, err := Parse(u.Opaque, nil)
		if err != nil {
			return Origin{Opaque: true}
		}
		return inner.Origin()
	case "ftp", "http", "https", "ws", "wss":
		return Origin{Scheme: u.Scheme, Host: u.Host, Port: u.Port}
	case "file":
		return Origin{Opaque: true}
	default:
		return Origin{Opaque: true}
	}
}

// Serialize implements https://url.spec.whatwg.org/#concept-origin-opaque
// and https://url.spec.whatwg.org/#concept-origin-tuple's serialization.
func (o Origin) Serialize() string {
	if o.Opaque {
		return "null"
	}
	result := o.Scheme + "://" + serializeHost(o.Host)
	if o.Port != nil {
		result += fmt.Sprintf(":%d", *o.Port)
	}
	return result
}

// Same reports whether two origins are the same origin,
// https://html.spec.whatwg.org/multipage/browsers.html#same-origin.
func (o Origin) Same(other Origin) bool {
	if o.Opaque || other.Opaque {
		return false
	}
	if o.Scheme != other.Scheme {
		return false
	}
	if serializeHost(o.Host) != serializeHost(other.Host) {
		return false
	}
	if (o.Port == nil) != (other.Port == nil) {
		return false
	}
	return o.Port == nil || *o.Port == *other.Port
}

var blobURLSequence int

// BlobURLCreate implements the relevant half of
// https://w3c.github.io/FileAPI/#blob-url-entry: registering a blob
// URL against an origin and returning its serialization. The registry
// itself (mapping generated URLs back to their blob object and
// origin) belongs to a higher-level DOM/File API layer, out of scope
// for this package; this records only the URL-producing half the URL
// module owns.
func BlobURLCreate(origin Origin) string {
	blobURLSequence++
	return fmt.Sprintf("blob:%s/%08x-0000-4000-8000-%012x", origin.Serialize(), blobURLSequence, blobURLSequence)
}
