/*
Package isolation provides [net/http] middleware that protects Web
applications against cross-origin resource inclusion and
[cross-site request forgery (CSRF)] by means of a [resource-isolation policy]
based on [Fetch Metadata] request headers.

For each request, the middleware inspects the [Sec-Fetch-Site] and
[Sec-Fetch-Mode] request headers along with the request's method,
and either lets the request through to the handler it wraps
or rejects it with a 403 response whose body is "Invalid resource access".
The rules, evaluated in order, are the following:

 1. If either header is absent, the request is allowed; browsers that
    predate Fetch Metadata (and non-browser clients) don't send those headers,
    and the middleware fails open for them.
 2. If Sec-Fetch-Site is "none", "same-site", or "same-origin",
    the request is allowed.
 3. If Sec-Fetch-Mode is "navigate" and the method is GET,
    the request is allowed; such requests correspond to top-level navigations,
    e.g. a user following a link from another site.
 4. Otherwise, the request is rejected.

Header values are compared exactly and case-sensitively,
since browsers send them verbatim.
Only the first field line of each header is taken into account.

Care is required for such middleware to work as intended:

  - Intermediaries [SHOULD NOT] strip or alter the Sec-Fetch-Site
    and Sec-Fetch-Mode request headers that are set by browsers;
    in particular, stripping them would cause the middleware to fail open.
  - Endpoints that are deliberately meant to be reached cross-site
    by non-navigational requests (webhook receivers, OAuth callbacks that
    rely on response_mode=form_post, publicly embeddable resources, etc.)
    [MUST] be listed in [Config.ExemptPaths]; otherwise, the middleware
    will reject requests to them.
  - This middleware complements, but does not replace,
    authentication and authorization.

[Fetch Metadata]: https://w3c.github.io/webappsec-fetch-metadata/
[MUST]: https://www.ietf.org/rfc/rfc2119.txt
[SHOULD NOT]: https://www.ietf.org/rfc/rfc2119.txt
[Sec-Fetch-Mode]: https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/Sec-Fetch-Mode
[Sec-Fetch-Site]: https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/Sec-Fetch-Site
[cross-site request forgery (CSRF)]: https://developer.mozilla.org/en-US/docs/Glossary/CSRF
[resource-isolation policy]: https://web.dev/articles/fetch-metadata
*/
package isolation
