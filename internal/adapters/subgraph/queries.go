package subgraph

const proposalFields = `
	id
	title
	description
	status
	proposer { id }
	signers { id }
	createdBlock
	createdTimestamp
	startBlock
	endBlock
	objectionPeriodEndBlock
	updatePeriodEndBlock
	forVotes
	againstVotes
	abstainVotes
	quorumVotes
	executionETA
	targets
	values
	signatures
	calldatas
`

const proposalQuery = `query Proposal($id: ID!) {
	proposal(id: $id) {` + proposalFields + `}
}`

const proposalVersionsQuery = `query ProposalVersions($id: String!) {
	proposalVersions(where: { proposal: $id }, orderBy: createdAt, orderDirection: asc) {
		id
		createdAt
		updateMessage
		title
		description
		targets
		values
		signatures
		calldatas
	}
}`

const dynamicQuorumQuery = `query PropUsingDynamicQuorum($id: ID!) {
	proposal(id: $id) {
		quorumCoefficient
		minQuorumVotesBPS
		maxQuorumVotesBPS
		totalSupply
	}
}`

const votesQuery = `query ProposalVotes($id: String!, $first: Int!) {
	votes(where: { proposal: $id, votesRaw_gt: 0 }, first: $first, orderBy: blockNumber, orderDirection: asc) {
		supportDetailed
		votes
		reason
		voter { id }
	}
}`

const delegatesQuery = `query DelegateNounsAtBlock($ids: [ID!]!, $block: Int!, $first: Int!) {
	delegates(where: { id_in: $ids }, block: { number: $block }, first: $first) {
		id
		nounsRepresented { id }
	}
}`

const proposalsQuery = `query Proposals($first: Int!) {
	proposals(first: $first, orderBy: createdBlock, orderDirection: desc) {
		id
		title
		status
		proposer { id }
		forVotes
		againstVotes
		abstainVotes
		createdBlock
	}
}`
