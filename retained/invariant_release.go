//go:build !tagflowdebug

package retained

const debugAssertions = false
