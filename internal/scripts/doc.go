// Package scripts discovers algorithms that are defined in files rather than
// compiled in.
//
// A scripts folder is walked recursively. Every `.hcl` file may declare any
// number of `algorithm` blocks; every `.yaml` or `.yml` file declares exactly
// one algorithm and is validated against an embedded JSON schema first.
//
//	algorithm "clip_by_extent" {
//	  name    = "Clip by extent"
//	  group   = "Vector overlay"
//	  version = "1.2.0"
//
//	  input "layer" {
//	    type = string
//	  }
//	  output "clipped" {
//	    type = string
//	  }
//	}
//
// Discovery is best effort. A missing folder yields no algorithms, and a file
// that fails to parse is logged and skipped without affecting its siblings.
package scripts
