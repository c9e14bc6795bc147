//go:build tagflowdebug

package retained

const debugAssertions = true
