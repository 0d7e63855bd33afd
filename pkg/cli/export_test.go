package cli

var (
	RenderResultForTest      = renderResult
	LambdaOptionsForTest     = lambdaOptions
	CredentialSourceForTest  = credentialSource
	NewObjectStorageForTest  = newObjectStorage
	ResolveConfigWithForTest = resolveConfigWith
)
