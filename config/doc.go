// Package config loads named URL prefix endpoints from a YAML file.
//
// A configuration file lists endpoints by name:
//
//	endpoints:
//	  - name: site
//	    protocol: https
//	    host: magiclen.org
//	    port: 8100
//	    path: url-prefix
//	  - name: local
//	    protocol: http
//	    host: 127.0.0.1:8080
//	    allowLocal: true
//
// Every host is validated with hostcheck when the file is loaded, so each
// Endpoint can build its prefix without further checks. Unknown keys are
// rejected. An explicit port wins over a port embedded in the host.
package config
